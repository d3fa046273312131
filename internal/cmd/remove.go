package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guskit/gus/internal/style"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Unregister an identity",
	Long: `Remove an identity from the registry.

Key files are left in place. Auto-switch rules referencing the removed
identity stay in the config but stop matching.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	if err := sw.RemoveIdentity(args[0]); err != nil {
		return err
	}

	fmt.Printf("%s Removed identity '%s'\n", style.SuccessPrefix, args[0])
	return nil
}
