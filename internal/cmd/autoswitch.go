package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guskit/gus/internal/style"
)

var autoSwitchCmd = &cobra.Command{
	Use:   "auto-switch",
	Short: "Manage directory-triggered identity switching",
	Long: `Manage automatic identity switching based on the current directory.

Rules map glob patterns to identity ids and are evaluated in order;
the first rule whose pattern matches the directory and whose identity
still exists wins. Patterns may start with ~ for the home directory.

Examples:
  gus auto-switch enable
  gus auto-switch add '~/work/*' work
  gus auto-switch add '~/oss/*' personal
  gus auto-switch list`,
	RunE: func(cmd *cobra.Command, args []string) error { return cmd.Help() },
}

var autoSwitchEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable auto-switching",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runAutoSwitchToggle(true) },
}

var autoSwitchDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable auto-switching",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runAutoSwitchToggle(false) },
}

var autoSwitchAddCmd = &cobra.Command{
	Use:   "add <pattern> <id>",
	Short: "Add an auto-switch rule",
	Args:  cobra.ExactArgs(2),
	RunE:  runAutoSwitchAdd,
}

var autoSwitchRemoveCmd = &cobra.Command{
	Use:   "remove <pattern>",
	Short: "Remove the auto-switch rule with the exact pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutoSwitchRemove,
}

var autoSwitchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List auto-switch rules in evaluation order",
	Args:  cobra.NoArgs,
	RunE:  runAutoSwitchList,
}

var autoSwitchCheckCmd = &cobra.Command{
	Use:    "check",
	Short:  "Resolve the current directory and switch if a rule matches",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runAutoSwitchCheck,
}

func init() {
	rootCmd.AddCommand(autoSwitchCmd)
	autoSwitchCmd.AddCommand(autoSwitchEnableCmd)
	autoSwitchCmd.AddCommand(autoSwitchDisableCmd)
	autoSwitchCmd.AddCommand(autoSwitchAddCmd)
	autoSwitchCmd.AddCommand(autoSwitchRemoveCmd)
	autoSwitchCmd.AddCommand(autoSwitchListCmd)
	autoSwitchCmd.AddCommand(autoSwitchCheckCmd)
}

func runAutoSwitchToggle(enabled bool) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}
	if err := sw.SetAutoSwitch(enabled); err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Printf("%s Auto-switch %s\n", style.SuccessPrefix, state)
	if enabled {
		fmt.Println(style.Dim.Render("Restart your shell (or re-run 'eval \"$(gus setup)\"') to install the cd hook."))
	}
	return nil
}

func runAutoSwitchAdd(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}
	pattern, id := args[0], args[1]
	if err := sw.AddRule(pattern, id); err != nil {
		return err
	}
	fmt.Printf("%s Added rule: %s -> %s\n", style.SuccessPrefix, pattern, id)
	return nil
}

func runAutoSwitchRemove(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}
	removed, err := sw.RemoveRule(args[0])
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No rule with pattern '%s'\n", args[0])
		return nil
	}
	fmt.Printf("%s Removed rule: %s\n", style.SuccessPrefix, args[0])
	return nil
}

func runAutoSwitchList(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	rules := sw.Config.AutoSwitchRules
	state := "disabled"
	if sw.Config.AutoSwitchEnabled {
		state = "enabled"
	}
	fmt.Printf("Auto-switch is %s\n", style.Bold.Render(state))

	if len(rules) == 0 {
		fmt.Println(style.Dim.Render("No rules configured."))
		return nil
	}
	for i, r := range rules {
		fmt.Printf("  %d. %s -> %s\n", i+1, r.Pattern, r.IdentityID)
	}
	return nil
}

func runAutoSwitchCheck(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Runs on every cd; stays silent whether or not a rule matched.
	return sw.CheckAutoSwitch(dir)
}
