package sshkey

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckPassphrase(t *testing.T) {
	if err := CheckPassphrase("longenough", 10); err != nil {
		t.Errorf("CheckPassphrase valid: %v", err)
	}
	if err := CheckPassphrase("short", 10); !errors.Is(err, ErrPassphraseTooShort) {
		t.Errorf("CheckPassphrase short: got %v, want ErrPassphraseTooShort", err)
	}
	if err := CheckPassphrase("", 0); err != nil {
		t.Errorf("CheckPassphrase with no minimum: %v", err)
	}
}

func TestPublicKey(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "id_work")

	if _, err := PublicKey(keyPath); err == nil {
		t.Error("PublicKey for missing file should error")
	}

	want := "ssh-ed25519 AAAA... id_work\n"
	if err := os.WriteFile(keyPath+".pub", []byte(want), 0o644); err != nil {
		t.Fatalf("write pub key: %v", err)
	}

	got, err := PublicKey(keyPath)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	if got != want {
		t.Errorf("PublicKey = %q, want %q", got, want)
	}
}
