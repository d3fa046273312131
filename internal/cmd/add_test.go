package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guskit/gus/internal/identity"
)

func TestRunAdd_ExpandsTildeInKeyFlag(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// An existing key skips generation and the passphrase prompt.
	keyDir := filepath.Join(home, ".ssh")
	if err := os.MkdirAll(keyDir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	wantKey := filepath.Join(keyDir, "id_work")
	if err := os.WriteFile(wantKey, []byte("key material"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	cfgPath := filepath.Join(home, "config.toml")
	rootCmd.SetArgs([]string{
		"add", "work", "Work User", "work@example.com",
		"--key", "~/.ssh/id_work",
		"--config", cfgPath,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	reg, err := identity.Load(filepath.Join(home, ".gus", "identities.toml"))
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	ident, err := reg.Get("work")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ident.SSHKeyPath != wantKey {
		t.Errorf("SSHKeyPath = %q, want expanded %q", ident.SSHKeyPath, wantKey)
	}
}
