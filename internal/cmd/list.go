package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/guskit/gus/internal/style"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all identities",
	Long: `List all registered identities.

The active identity of this shell session is marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	idents := sw.Registry.List()
	if len(idents) == 0 {
		fmt.Println("No identities registered. Run 'gus add <id> <name> <email>' to add the first one.")
		return nil
	}

	current, _ := sw.Current()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Dim).
		Headers("", "ID", "NAME", "EMAIL")
	for _, ident := range idents {
		marker := ""
		if ident.ID == current.ID {
			marker = "*"
		}
		t.Row(marker, ident.ID, ident.Name, ident.Email)
	}

	fmt.Println(t)
	return nil
}
