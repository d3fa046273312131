// Package cmd implements the gus command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/guskit/gus/internal/config"
	"github.com/guskit/gus/internal/style"
	"github.com/guskit/gus/internal/switcher"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gus",
	Short: "Switch git identities per shell session",
	Long: `gus maintains multiple named identities (name, email, ssh key) and
switches the active one per interactive shell session, optionally
automatically based on the current directory.

Add 'eval "$(gus setup)"' to your shell rc to install the integration.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the config file (default ~/.config/gus/config.toml)")
}

// openSwitcher loads state for the current invocation.
func openSwitcher() (*switcher.Switcher, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return switcher.Open(path)
}

// appInvocation returns the name the wrapper function is bound to and
// the absolute executable path it forwards to. The two differ on
// purpose: args[0] preserves the name the user invokes (possibly a
// symlink or alias target) while os.Executable resolves the real
// binary the wrapper must call.
func appInvocation() (name, path string, err error) {
	exe, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("resolve executable: %w", err)
	}
	return filepath.Base(os.Args[0]), exe, nil
}
