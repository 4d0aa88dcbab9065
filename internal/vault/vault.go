// Package vault stores the Resend API key outside the project tree.
package vault

import "errors"

// ErrNotFound is returned when a key is not in the vault.
var ErrNotFound = errors.New("key not found")

// Vault provides secure storage for named secrets.
type Vault interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
	Has(key string) (bool, error)
	Backend() string
}

// Mask returns a masked version of a value for display.
func Mask(value string) string {
	r := []rune(value)
	if len(r) <= 8 {
		return "****"
	}
	return string(r[:4]) + "..." + string(r[len(r)-4:])
}
