// Package credential resolves the Resend API key.
package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// EnvVar is the variable holding the Resend API key.
const EnvVar = "RESEND_API_KEY"

// previewLen is how many leading characters of a key are shown to the operator.
const previewLen = 10

// ErrMissing means no usable API key was found.
var ErrMissing = errors.New(EnvVar + " not found")

// ConfigError reports a missing or unusable credential. It is fatal.
type ConfigError struct {
	Source string // where the key was expected, e.g. ".env.local"
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s in %s", e.Err, e.Source)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Origin identifies where a resolved key came from.
type Origin string

const (
	FromEnv   Origin = "env"
	FromVault Origin = "vault"
)

// Credential is a resolved API key.
type Credential struct {
	Key    string
	Origin Origin
}

// Getter is the slice of vault.Vault the resolver needs.
type Getter interface {
	Get(key string) (string, error)
}

// Resolver finds the API key in the environment, then optionally the vault.
type Resolver struct {
	Source    string
	LookupEnv func(key string) (string, bool)
	Fallback  Getter
}

// Resolve returns the API key or a *ConfigError wrapping ErrMissing.
func (r *Resolver) Resolve() (Credential, error) {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	// Blank values count as missing; anything else is passed through as-is.
	if val, ok := lookup(EnvVar); ok && strings.TrimSpace(val) != "" {
		return Credential{Key: val, Origin: FromEnv}, nil
	}

	if r.Fallback != nil {
		val, err := r.Fallback.Get(EnvVar)
		if err == nil && strings.TrimSpace(val) != "" {
			return Credential{Key: val, Origin: FromVault}, nil
		}
	}

	return Credential{}, &ConfigError{Source: r.Source, Err: ErrMissing}
}

// Preview returns the first ten characters of key followed by "...".
func Preview(key string) string {
	r := []rune(key)
	if len(r) > previewLen {
		r = r[:previewLen]
	}
	return string(r) + "..."
}

// LooksValid reports whether key has the shape Resend issues (re_ prefix).
func LooksValid(key string) bool {
	return strings.HasPrefix(key, "re_") && len(key) > len("re_")
}
