// Package config handles the gus configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Rule maps a directory glob pattern to an identity id. Rules are
// evaluated in list order; the first match wins.
type Rule struct {
	Pattern    string `toml:"pattern"`
	IdentityID string `toml:"identity_id"`
}

// Config holds the gus configuration. It is loaded once per invocation
// and written back as a whole file after every successful mutation.
type Config struct {
	RegistryPath      string `toml:"registry_path"`
	SSHKeyDir         string `toml:"sshkey_dir"`
	SSHKeyType        string `toml:"sshkey_type"`
	SSHKeyRounds      int    `toml:"sshkey_rounds"`
	MinPassphraseLen  int    `toml:"min_passphrase_length"`
	RequireIdentity   bool   `toml:"require_identity"`
	AutoSwitchEnabled bool   `toml:"auto_switch_enabled"`
	AutoSwitchRules   []Rule `toml:"auto_switch_rules"`
}

// DataDir returns the gus data directory (~/.gus).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".gus"), nil
}

// DefaultPath returns the default config file path
// (~/.config/gus/config.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "gus", "config.toml"), nil
}

// Default returns a config populated with defaults.
func Default() (*Config, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		RegistryPath:     filepath.Join(dataDir, "identities.toml"),
		SSHKeyDir:        filepath.Join(dataDir, "sshkeys"),
		SSHKeyType:       "ed25519",
		SSHKeyRounds:     100,
		MinPassphraseLen: 10,
		RequireIdentity:  true,
	}, nil
}

// Load reads the config from path. On first run (file missing) the
// default config is written to path and returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg, err := Default()
		if err != nil {
			return nil, err
		}
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// AddRule appends a rule to the ordered list. Validation happens in
// the autoswitch package before this is called.
func (c *Config) AddRule(pattern, identityID string) {
	c.AutoSwitchRules = append(c.AutoSwitchRules, Rule{
		Pattern:    pattern,
		IdentityID: identityID,
	})
}

// RemoveRule removes the first rule with the exact pattern string,
// preserving the order of the rest. Returns false when no rule has
// that pattern.
func (c *Config) RemoveRule(pattern string) bool {
	for i, r := range c.AutoSwitchRules {
		if r.Pattern == pattern {
			c.AutoSwitchRules = append(c.AutoSwitchRules[:i], c.AutoSwitchRules[i+1:]...)
			return true
		}
	}
	return false
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
