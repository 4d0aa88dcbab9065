package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileVault keeps secrets in an AES-256-GCM encrypted JSON file under the
// rskeys config directory. The key is derived from host and user, so the
// file only opens on the machine that wrote it.
type FileVault struct {
	path string
	key  []byte
}

// NewFileVault creates a vault backed by $XDG_CONFIG_HOME/rskeys/vault.enc.
func NewFileVault() *FileVault {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return NewFileVaultAt(filepath.Join(dir, "rskeys", "vault.enc"))
}

// NewFileVaultAt creates a file vault at an explicit path.
func NewFileVaultAt(path string) *FileVault {
	return &FileVault{path: path, key: deriveKey()}
}

// Path returns the vault file location.
func (f *FileVault) Path() string { return f.path }

// Backend implements Vault.
func (f *FileVault) Backend() string { return "file" }

func deriveKey() []byte {
	hostname, _ := os.Hostname()
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("rskeys-vault:%s:%s", hostname, username)))
	return sum[:]
}

func (f *FileVault) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(f.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (f *FileVault) read() (map[string]string, error) {
	sealed, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	gcm, err := f.aead()
	if err != nil {
		return nil, err
	}
	n := gcm.NonceSize()
	if len(sealed) < n {
		return nil, errors.New("vault decrypt: ciphertext too short")
	}
	plain, err := gcm.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("vault decrypt: %w", err)
	}

	store := map[string]string{}
	if err := json.Unmarshal(plain, &store); err != nil {
		return nil, fmt.Errorf("vault parse: %w", err)
	}
	return store, nil
}

func (f *FileVault) write(store map[string]string) error {
	plain, err := json.Marshal(store)
	if err != nil {
		return err
	}

	gcm, err := f.aead()
	if err != nil {
		return err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, gcm.Seal(nonce, nonce, plain, nil), 0o600)
}

// Set stores value under key, replacing any previous value.
func (f *FileVault) Set(key, value string) error {
	store, err := f.read()
	if err != nil {
		return err
	}
	store[key] = value
	return f.write(store)
}

// Get returns the value stored under key.
func (f *FileVault) Get(key string) (string, error) {
	store, err := f.read()
	if err != nil {
		return "", err
	}
	val, ok := store[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return val, nil
}

// Has reports whether key is stored.
func (f *FileVault) Has(key string) (bool, error) {
	store, err := f.read()
	if err != nil {
		return false, err
	}
	_, ok := store[key]
	return ok, nil
}

// Delete removes key.
func (f *FileVault) Delete(key string) error {
	store, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := store[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(store, key)
	return f.write(store)
}
