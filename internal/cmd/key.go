package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key <id>",
	Short: "Print an identity's public ssh key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	pub, err := sw.PublicKey(args[0])
	if err != nil {
		return err
	}

	fmt.Print(pub)
	return nil
}
