package vault

import (
	"fmt"
	"os/exec"
	"strings"
)

const serviceName = "rskeys-vault"

// KeychainVault stores secrets in the macOS login Keychain via security(1).
type KeychainVault struct {
	run func(args ...string) ([]byte, error)
}

// NewKeychain creates a new macOS Keychain vault.
func NewKeychain() *KeychainVault {
	return &KeychainVault{run: func(args ...string) ([]byte, error) {
		return exec.Command("security", args...).CombinedOutput()
	}}
}

// Backend implements Vault.
func (k *KeychainVault) Backend() string { return "keychain" }

// Set stores a key-value pair in the Keychain.
func (k *KeychainVault) Set(key, value string) error {
	out, err := k.run("add-generic-password", "-s", serviceName, "-a", key, "-w", value, "-U")
	if err != nil {
		return fmt.Errorf("keychain set: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Get retrieves a value from the Keychain.
func (k *KeychainVault) Get(key string) (string, error) {
	out, err := k.run("find-generic-password", "-s", serviceName, "-a", key, "-w")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return strings.TrimSpace(string(out)), nil
}

// Has reports whether the Keychain holds key.
func (k *KeychainVault) Has(key string) (bool, error) {
	if _, err := k.run("find-generic-password", "-s", serviceName, "-a", key); err != nil {
		return false, nil
	}
	return true, nil
}

// Delete removes a key from the Keychain.
func (k *KeychainVault) Delete(key string) error {
	out, err := k.run("delete-generic-password", "-s", serviceName, "-a", key)
	if err != nil {
		return fmt.Errorf("keychain delete: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}
