package store

import (
	"fmt"
	"path/filepath"

	"plantmate/internal/config"
	"plantmate/internal/pm"
)

// NewStoreFromConfig creates a Store implementation based on the store
// config type, wrapping it with age encryption when configured.
func NewStoreFromConfig(cfg config.StoreConfig) (pm.Store, error) {
	var (
		st  pm.Store
		err error
	)

	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite store")
		}
		st, err = NewSQLiteStore(filepath.Join(cfg.DataDir, "pm.db"))
	case "filesystem":
		if cfg.Dir == "" {
			return nil, fmt.Errorf("filesystem store requires dir to be set")
		}
		st, err = NewFileStore(cfg.Dir)
	case "memory":
		st = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	switch cfg.Encryption {
	case "", "none":
		return st, nil
	case "age":
		if cfg.IdentityPath == "" {
			st.Close()
			return nil, fmt.Errorf("age encryption requires identity_path to be set")
		}
		enc, err := NewEncryptedStore(st, cfg.IdentityPath)
		if err != nil {
			st.Close()
			return nil, err
		}
		return enc, nil
	default:
		st.Close()
		return nil, fmt.Errorf("unknown store encryption: %q", cfg.Encryption)
	}
}
