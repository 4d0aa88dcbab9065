package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultBaseURL is the Resend API root.
const DefaultBaseURL = "https://api.resend.com/"

// Config holds rskeys configuration.
type Config struct {
	Env         EnvConfig         `toml:"env"`
	API         APIConfig         `toml:"api"`
	Output      OutputConfig      `toml:"output"`
	UI          UIConfig          `toml:"ui"`
	Credentials CredentialsConfig `toml:"credentials"`
	Vault       VaultConfig       `toml:"vault"`
}

// EnvConfig points at the dotenv file holding the credential.
type EnvConfig struct {
	File string `toml:"file"`
}

// APIConfig controls the Resend client.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// OutputConfig controls how a key listing is printed.
type OutputConfig struct {
	Format string `toml:"format"` // "raw", "json", "yaml", "table"
}

// UIConfig controls display options.
type UIConfig struct {
	Emoji bool `toml:"emoji"`
	Color bool `toml:"color"`
}

// CredentialsConfig controls where the API key may come from.
type CredentialsConfig struct {
	VaultFallback bool `toml:"vault_fallback"`
}

// VaultConfig controls vault backend selection.
type VaultConfig struct {
	Backend string `toml:"backend"` // "auto", "keychain", "file"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Env:         EnvConfig{File: ".env.local"},
		API:         APIConfig{BaseURL: DefaultBaseURL, Timeout: "30s"},
		Output:      OutputConfig{Format: "raw"},
		UI:          UIConfig{Emoji: true, Color: true},
		Credentials: CredentialsConfig{VaultFallback: false},
		Vault:       VaultConfig{Backend: "auto"},
	}
}

// TimeoutDuration parses API.Timeout. Zero means no client-side timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("api.timeout: negative duration %s", c.API.Timeout)
	}
	return d, nil
}

// ApplyEnv lets RESEND_BASE_URL override the configured API root.
func (c *Config) ApplyEnv() {
	if u := os.Getenv("RESEND_BASE_URL"); u != "" {
		c.API.BaseURL = u
	}
}

// ConfigDir returns the rskeys config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rskeys")
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads a specific config file on top of the defaults. The returned
// config is always usable; err reports why the file was ignored, if it was.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
// It reports whether a new file was written.
func EnsureExists() (bool, error) {
	if _, err := os.Stat(Path()); err == nil {
		return false, nil
	}
	if err := Save(Default()); err != nil {
		return false, err
	}
	return true, nil
}
