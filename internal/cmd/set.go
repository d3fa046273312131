package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guskit/gus/internal/style"
	"github.com/guskit/gus/internal/tui"
)

var setCmd = &cobra.Command{
	Use:   "set [id]",
	Short: "Switch the active identity",
	Long: `Switch the active identity of the current shell session.

With no argument, opens an interactive picker. The switch takes effect
after the next wrapped command runs, once the shell sources the
session script.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		idents := sw.Registry.List()
		if len(idents) == 0 {
			return fmt.Errorf("no identities registered; run 'gus add' first")
		}
		chosen, ok, err := tui.SelectIdentity(idents)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(style.Dim.Render("Cancelled."))
			return nil
		}
		id = chosen
	}

	if err := sw.Switch(id); err != nil {
		return err
	}

	fmt.Printf("%s Switched to identity '%s'\n", style.SuccessPrefix, id)
	return nil
}
