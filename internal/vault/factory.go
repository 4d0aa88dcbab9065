package vault

import (
	"fmt"
	"runtime"
)

// Open returns the vault for the configured backend: "keychain", "file", or
// "auto" (Keychain on macOS, encrypted file elsewhere).
func Open(backend string) (Vault, error) {
	switch backend {
	case "", "auto":
		if runtime.GOOS == "darwin" {
			return NewKeychain(), nil
		}
		return NewFileVault(), nil
	case "keychain":
		if runtime.GOOS != "darwin" {
			return nil, fmt.Errorf("vault backend %q is only available on macOS", backend)
		}
		return NewKeychain(), nil
	case "file":
		return NewFileVault(), nil
	default:
		return nil, fmt.Errorf("unknown vault backend %q", backend)
	}
}
