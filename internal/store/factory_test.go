package store

import (
	"testing"

	"plantmate/internal/config"
)

func TestNewStoreFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StoreConfig
		wantErr bool
	}{
		{
			name: "memory store",
			cfg:  config.StoreConfig{Type: "memory"},
		},
		{
			name: "sqlite store",
			cfg:  config.StoreConfig{Type: "sqlite", DataDir: t.TempDir()},
		},
		{
			name: "filesystem store",
			cfg:  config.StoreConfig{Type: "filesystem", Dir: t.TempDir()},
		},
		{
			name:    "sqlite without data_dir",
			cfg:     config.StoreConfig{Type: "sqlite"},
			wantErr: true,
		},
		{
			name:    "filesystem without dir",
			cfg:     config.StoreConfig{Type: "filesystem"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cfg:     config.StoreConfig{Type: "redis"},
			wantErr: true,
		},
		{
			name:    "age without identity_path",
			cfg:     config.StoreConfig{Type: "memory", Encryption: "age"},
			wantErr: true,
		},
		{
			name:    "unknown encryption",
			cfg:     config.StoreConfig{Type: "memory", Encryption: "rot13"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewStoreFromConfig(tt.cfg)
			if tt.wantErr {
				if err == nil {
					st.Close()
					t.Fatal("NewStoreFromConfig() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStoreFromConfig() error = %v", err)
			}
			st.Close()
		})
	}
}

func TestNewStoreFromConfigEncrypted(t *testing.T) {
	identity := newTestIdentity(t)
	st, err := NewStoreFromConfig(config.StoreConfig{
		Type:         "memory",
		Encryption:   "age",
		IdentityPath: identity,
	})
	if err != nil {
		t.Fatalf("NewStoreFromConfig() error = %v", err)
	}
	defer st.Close()

	if _, ok := st.(*EncryptedStore); !ok {
		t.Errorf("store type = %T, want *EncryptedStore", st)
	}
	runStoreTests(t, st)
}
