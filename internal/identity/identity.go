// Package identity provides the identity registry for gus.
package identity

import (
	"fmt"
	"path/filepath"
)

// Identity is a named set of author/committer attributes and an
// associated ssh key reference.
type Identity struct {
	// ID is the unique, stable key for this identity.
	ID string `toml:"id"`

	// Name is the display name used for git author/committer.
	Name string `toml:"name"`

	// Email is the address used for git author/committer.
	Email string `toml:"email"`

	// SSHKeyPath is an explicit private key path. When empty, the key
	// name is derived from the id and resolved against the configured
	// key directory.
	SSHKeyPath string `toml:"sshkey_path,omitempty"`
}

func (i Identity) String() string {
	return fmt.Sprintf("%s: %s <%s>", i.ID, i.Name, i.Email)
}

// KeyName returns the file name of the identity's private key.
func (i Identity) KeyName() string {
	if i.SSHKeyPath != "" {
		return filepath.Base(i.SSHKeyPath)
	}
	return "id_" + i.ID
}

// KeyPath resolves the identity's private key path against the default
// key directory.
func (i Identity) KeyPath(defaultKeyDir string) string {
	if i.SSHKeyPath != "" {
		return i.SSHKeyPath
	}
	return filepath.Join(defaultKeyDir, i.KeyName())
}
