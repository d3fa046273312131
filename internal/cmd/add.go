package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/guskit/gus/internal/config"
	"github.com/guskit/gus/internal/identity"
	"github.com/guskit/gus/internal/style"
)

var addKeyPath string

var addCmd = &cobra.Command{
	Use:   "add <id> <name> <email>",
	Short: "Register a new identity",
	Long: `Register a new identity under a unique id.

If the identity's ssh key does not exist yet, a key pair is generated
with ssh-keygen after prompting for a passphrase.

Examples:
  gus add work "Ada Lovelace" ada@corp.example
  gus add oss "Ada Lovelace" ada@example.org --key ~/.ssh/id_oss`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addKeyPath, "key", "", "path to an existing or desired ssh private key")
}

func runAdd(cmd *cobra.Command, args []string) error {
	sw, err := openSwitcher()
	if err != nil {
		return err
	}

	// The shell does not expand a quoted ~ in the flag value; stored
	// verbatim it would later resolve as a literal relative path.
	keyFlag := addKeyPath
	if keyFlag != "" {
		keyFlag, err = config.ExpandPath(keyFlag)
		if err != nil {
			return err
		}
	}

	ident := identity.Identity{
		ID:         strings.TrimSpace(args[0]),
		Name:       args[1],
		Email:      args[2],
		SSHKeyPath: keyFlag,
	}

	passphrase := ""
	keyPath := ident.KeyPath(sw.Config.SSHKeyDir)
	if _, statErr := os.Stat(keyPath); os.IsNotExist(statErr) {
		passphrase, err = promptPassphrase(sw.Config.MinPassphraseLen)
		if err != nil {
			return err
		}
	}

	if err := sw.AddIdentity(ident, passphrase); err != nil {
		return err
	}

	fmt.Printf("%s Added identity '%s'\n", style.SuccessPrefix, ident.ID)
	return nil
}

func promptPassphrase(minLen int) (string, error) {
	fmt.Fprintf(os.Stderr, "Enter new ssh key passphrase (at least %d characters): ", minLen)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pass), nil
}
