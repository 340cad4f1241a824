package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"filippo.io/age"

	"plantmate/internal/pm"
)

// EncryptedStore decorates another pm.Store and encrypts every value at rest
// with an age X25519 identity, so a synced or backed-up store directory does
// not expose the user's data or token in plaintext.
//
// The identity file is stored unencrypted with 0600 permissions, like an SSH
// private key; protecting it with a passphrase would force a prompt on every
// command, which does not fit a cache store that is read on each invocation.
type EncryptedStore struct {
	inner    pm.Store
	identity *age.X25519Identity
}

// NewEncryptedStore wraps inner with age encryption using the identity file
// at identityPath.
func NewEncryptedStore(inner pm.Store, identityPath string) (*EncryptedStore, error) {
	data, err := os.ReadFile(identityPath)
	if err != nil {
		return nil, fmt.Errorf("reading identity file: %w", err)
	}

	identities, err := age.ParseIdentities(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing identity file: %w", err)
	}
	if len(identities) == 0 {
		return nil, fmt.Errorf("no identities found in %s", identityPath)
	}
	x, ok := identities[0].(*age.X25519Identity)
	if !ok {
		return nil, fmt.Errorf("identity in %s is not an X25519 identity", identityPath)
	}

	return &EncryptedStore{inner: inner, identity: x}, nil
}

// GenerateIdentity creates a new X25519 identity file at path. It refuses to
// overwrite an existing file: losing the identity makes the store unreadable.
func GenerateIdentity(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("identity file already exists at %s", path)
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return fmt.Errorf("generating identity: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating identity directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(identity.String()+"\n"), 0600); err != nil {
		return fmt.Errorf("writing identity file: %w", err)
	}
	return nil
}

// Get decrypts the stored value for key. A value that fails to decrypt is
// reported as an error; the typed read helpers upstream degrade it to the
// empty collection.
func (e *EncryptedStore) Get(key string) ([]byte, bool, error) {
	ciphertext, ok, err := e.inner.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), e.identity)
	if err != nil {
		return nil, false, fmt.Errorf("decrypting key %q: %w", key, err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("decrypting key %q: %w", key, err)
	}
	return plaintext, true, nil
}

// Put encrypts value and stores the ciphertext under key.
func (e *EncryptedStore) Put(key string, value []byte) error {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, e.identity.Recipient())
	if err != nil {
		return fmt.Errorf("encrypting key %q: %w", key, err)
	}
	if _, err := w.Write(value); err != nil {
		return fmt.Errorf("encrypting key %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encryption for key %q: %w", key, err)
	}
	return e.inner.Put(key, buf.Bytes())
}

// Delete removes key from the underlying store.
func (e *EncryptedStore) Delete(key string) error { return e.inner.Delete(key) }

// Close closes the underlying store.
func (e *EncryptedStore) Close() error { return e.inner.Close() }

// Compile-time check that EncryptedStore implements the pm.Store interface
var _ pm.Store = (*EncryptedStore)(nil)
