package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guskit/gus/internal/style"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active identity",
	Args:  cobra.NoArgs,
	RunE:  runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	ident, ok := sw.Current()
	if !ok {
		fmt.Println(style.Dim.Render("No identity set."))
		fmt.Println("Run 'gus set <id>' to switch, or 'gus add' to register one.")
		return nil
	}

	fmt.Printf("%s %s\n", style.Bold.Render("Current identity:"), ident)
	return nil
}
