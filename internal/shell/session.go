// Package shell implements the boundary between gus and the
// interactive shell that invokes it: the per-session channel file used
// to propagate environment changes back into the parent shell, and the
// setup script that installs the cooperating wrapper functions.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable names shared between the emitted shell code and
// the switcher.
const (
	// EnvIdentity holds the id of the active identity. It is only ever
	// set by sourcing a session script written by gus itself.
	EnvIdentity = "GUS_IDENTITY"

	// EnvLoaded guards the setup script against repeated sourcing.
	EnvLoaded = "GUS_LOADED"
)

// Channel is the one-way communication path from a gus child process
// back to the long-lived parent shell. Each interactive shell gets an
// isolated file named from the parent process id, so simultaneously
// open shells never collide and no locking is needed.
type Channel struct {
	dir     string
	session int
}

// NewChannel returns the channel for the current process's parent
// shell. The namespace directory is derived from the executable name
// so different tools sharing the temp dir stay apart.
func NewChannel() (*Channel, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return NewChannelFor(filepath.Join(os.TempDir(), filepath.Base(exe)), os.Getppid()), nil
}

// NewChannelFor returns a channel rooted at dir for an explicit
// session identifier. Non-POSIX callers (and tests) inject the session
// token here instead of relying on the parent pid.
func NewChannelFor(dir string, session int) *Channel {
	return &Channel{dir: dir, session: session}
}

// Path returns the session script path. It is stable across every gus
// invocation from the same parent shell.
func (c *Channel) Path() string {
	return filepath.Join(c.dir, fmt.Sprintf("session%d.sh", c.session))
}

// Write replaces the session script contents. Writing an empty string
// clears the channel; this is done when installing the wrapper so a
// previous session's state cannot leak in.
func (c *Channel) Write(script string) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(c.Path(), []byte(script), 0o644); err != nil {
		return fmt.Errorf("write session script: %w", err)
	}
	return nil
}
