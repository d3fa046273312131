// Package sshkey generates and reads ssh key pairs by shelling out to
// ssh-keygen.
package sshkey

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrPassphraseTooShort indicates the passphrase does not meet the
// configured minimum length.
var ErrPassphraseTooShort = errors.New("passphrase too short")

// CheckPassphrase enforces the configured minimum passphrase length.
func CheckPassphrase(passphrase string, minLen int) error {
	if len(passphrase) < minLen {
		return fmt.Errorf("%w: at least %d characters required", ErrPassphraseTooShort, minLen)
	}
	return nil
}

// Generate creates a new key pair at path using ssh-keygen. The key
// directory is created if absent.
func Generate(keyType string, rounds int, comment, passphrase, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}

	cmd := exec.Command("ssh-keygen",
		"-t", keyType,
		"-a", strconv.Itoa(rounds),
		"-C", comment,
		"-N", passphrase,
		"-f", path,
		"-q",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ssh-keygen: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// PublicKey returns the contents of the public key next to the private
// key at path.
func PublicKey(path string) (string, error) {
	data, err := os.ReadFile(path + ".pub")
	if err != nil {
		return "", fmt.Errorf("reading public key: %w", err)
	}
	return string(data), nil
}
