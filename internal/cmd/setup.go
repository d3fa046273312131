package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Print the shell setup script",
	Long: `Print the shell source text that installs the gus integration:
a wrapper for gus itself, a git wrapper enforcing identity presence,
and (when enabled) a cd hook that re-evaluates the auto-switch rules.

Add this line to your shell rc:

  eval "$(gus setup)"`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	name, path, err := appInvocation()
	if err != nil {
		return err
	}

	script, err := sw.SetupScript(name, path)
	if err != nil {
		return err
	}

	fmt.Print(script)
	return nil
}
