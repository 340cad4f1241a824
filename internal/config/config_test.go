package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		BaseDir: "/home/user/.local/share/pm",
		LogDir:  "/home/user/.local/share/pm/log",
		Store: StoreConfig{
			Type:         "sqlite",
			DataDir:      "/home/user/.local/share/pm/data",
			Encryption:   "age",
			IdentityPath: "/home/user/.local/share/pm/keys/pm.key",
		},
		Remote: RemoteConfig{
			Type:       "http",
			BaseURL:    "https://plantmate.example.com",
			TimeoutSec: 30,
		},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.BaseDir != original.BaseDir {
		t.Errorf("BaseDir = %q, want %q", got.BaseDir, original.BaseDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Store.Type != "sqlite" {
		t.Errorf("Store.Type = %q, want %q", got.Store.Type, "sqlite")
	}
	if got.Store.DataDir != original.Store.DataDir {
		t.Errorf("Store.DataDir = %q, want %q", got.Store.DataDir, original.Store.DataDir)
	}
	if got.Store.Encryption != "age" {
		t.Errorf("Store.Encryption = %q, want %q", got.Store.Encryption, "age")
	}
	if got.Store.IdentityPath != original.Store.IdentityPath {
		t.Errorf("Store.IdentityPath = %q, want %q", got.Store.IdentityPath, original.Store.IdentityPath)
	}
	if got.Remote.Type != "http" {
		t.Errorf("Remote.Type = %q, want %q", got.Remote.Type, "http")
	}
	if got.Remote.BaseURL != original.Remote.BaseURL {
		t.Errorf("Remote.BaseURL = %q, want %q", got.Remote.BaseURL, original.Remote.BaseURL)
	}
	if got.Remote.TimeoutSec != 30 {
		t.Errorf("Remote.TimeoutSec = %d, want %d", got.Remote.TimeoutSec, 30)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/data/pm")

	if cfg.BaseDir != "/data/pm" {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, "/data/pm")
	}
	if cfg.LogDir != "/data/pm/log" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/data/pm/log")
	}
	if cfg.Store.Type != "sqlite" {
		t.Errorf("Store.Type = %q, want %q", cfg.Store.Type, "sqlite")
	}
	if cfg.Store.DataDir != "/data/pm/data" {
		t.Errorf("Store.DataDir = %q, want %q", cfg.Store.DataDir, "/data/pm/data")
	}
	if cfg.Store.IdentityPath != "/data/pm/keys/pm.key" {
		t.Errorf("Store.IdentityPath = %q, want %q", cfg.Store.IdentityPath, "/data/pm/keys/pm.key")
	}
	if cfg.Remote.Type != "http" {
		t.Errorf("Remote.Type = %q, want %q", cfg.Remote.Type, "http")
	}
	if cfg.Remote.BaseURL != "http://localhost:7777" {
		t.Errorf("Remote.BaseURL = %q, want %q", cfg.Remote.BaseURL, "http://localhost:7777")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pm.toml")
		cfg := NewConfig(dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file not created: %v", err)
		}
	})

	t.Run("fails if file already exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pm.toml")
		cfg := NewConfig(dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}

		err := Init(path, cfg)
		if err == nil {
			t.Fatal("second Init() expected error")
		}
	})
}

func TestReadFromFile(t *testing.T) {
	t.Run("reads valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pm.toml")
		cfg := NewConfig(dir)
		cfg.Store = StoreConfig{Type: "memory"}

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.Store.Type != "memory" {
			t.Errorf("Store.Type = %q, want %q", got.Store.Type, "memory")
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		_, err := ReadFromFile("/nonexistent/path/pm.toml")
		if err == nil {
			t.Fatal("ReadFromFile() expected error for missing file")
		}
	})
}
