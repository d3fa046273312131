// Package switcher orchestrates the identity registry, the
// configuration and the shell session channel.
package switcher

import (
	"fmt"
	"os"
	"strings"

	"github.com/guskit/gus/internal/autoswitch"
	"github.com/guskit/gus/internal/config"
	"github.com/guskit/gus/internal/identity"
	"github.com/guskit/gus/internal/shell"
	"github.com/guskit/gus/internal/sshkey"
)

// Switcher ties the persisted state to the session channel of the
// invoking shell. One Switcher lives for one command invocation.
type Switcher struct {
	Config   *config.Config
	Registry *identity.Registry

	configPath string
	channel    *shell.Channel
}

// Open loads (or creates on first run) the config and registry and
// binds the session channel for the current parent shell.
func Open(configPath string) (*Switcher, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	reg, err := identity.Load(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}
	ch, err := shell.NewChannel()
	if err != nil {
		return nil, err
	}
	return &Switcher{
		Config:     cfg,
		Registry:   reg,
		configPath: configPath,
		channel:    ch,
	}, nil
}

// New assembles a switcher from preloaded parts. Used by tests to
// inject a synthetic channel.
func New(cfg *config.Config, reg *identity.Registry, configPath string, ch *shell.Channel) *Switcher {
	return &Switcher{Config: cfg, Registry: reg, configPath: configPath, channel: ch}
}

// Switch makes id the active identity of the parent shell. The change
// takes effect once the wrapped tool next runs successfully and the
// shell sources the session channel.
func (s *Switcher) Switch(id string) error {
	ident, err := s.Registry.Get(id)
	if err != nil {
		return err
	}
	return s.channel.Write(s.exportScript(ident))
}

// exportScript renders the canonical environment assignments for an
// identity as shell source text.
func (s *Switcher) exportScript(ident identity.Identity) string {
	keyPath := ident.KeyPath(s.Config.SSHKeyDir)

	var b strings.Builder
	fmt.Fprintf(&b, "export %s=\"%s\"\n", shell.EnvIdentity, ident.ID)
	fmt.Fprintf(&b, "export GIT_AUTHOR_NAME=\"%s\"\n", ident.Name)
	fmt.Fprintf(&b, "export GIT_AUTHOR_EMAIL=\"%s\"\n", ident.Email)
	fmt.Fprintf(&b, "export GIT_COMMITTER_NAME=\"%s\"\n", ident.Name)
	fmt.Fprintf(&b, "export GIT_COMMITTER_EMAIL=\"%s\"\n", ident.Email)
	fmt.Fprintf(&b, "export GIT_SSH_COMMAND=\"ssh -i %s -F /dev/null\"\n", keyPath)
	return b.String()
}

// Current returns the active identity of this session. The id comes
// from the environment variable exported by a prior switch; if it is
// unset or names an identity no longer registered, there is no
// current identity.
func (s *Switcher) Current() (identity.Identity, bool) {
	id := os.Getenv(shell.EnvIdentity)
	if id == "" {
		return identity.Identity{}, false
	}
	ident, err := s.Registry.Get(id)
	if err != nil {
		return identity.Identity{}, false
	}
	return ident, true
}

// AddIdentity registers a new identity, generating its key pair first
// when the key file does not exist. Nothing is persisted if key
// generation fails.
func (s *Switcher) AddIdentity(ident identity.Identity, passphrase string) error {
	if err := s.Registry.Add(ident); err != nil {
		return err
	}

	keyPath := ident.KeyPath(s.Config.SSHKeyDir)
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		if err := sshkey.CheckPassphrase(passphrase, s.Config.MinPassphraseLen); err != nil {
			return err
		}
		if err := sshkey.Generate(s.Config.SSHKeyType, s.Config.SSHKeyRounds, ident.KeyName(), passphrase, keyPath); err != nil {
			return fmt.Errorf("generating ssh key for %s: %w", ident.ID, err)
		}
	}

	return s.Registry.Save(s.Config.RegistryPath)
}

// RemoveIdentity unregisters an identity and persists the registry.
// The key files are left in place.
func (s *Switcher) RemoveIdentity(id string) error {
	if err := s.Registry.Remove(id); err != nil {
		return err
	}
	return s.Registry.Save(s.Config.RegistryPath)
}

// PublicKey returns the public key text for an identity.
func (s *Switcher) PublicKey(id string) (string, error) {
	ident, err := s.Registry.Get(id)
	if err != nil {
		return "", err
	}
	return sshkey.PublicKey(ident.KeyPath(s.Config.SSHKeyDir))
}

// SetAutoSwitch toggles directory-triggered switching and persists the
// config.
func (s *Switcher) SetAutoSwitch(enabled bool) error {
	s.Config.AutoSwitchEnabled = enabled
	return s.Config.Save(s.configPath)
}

// AddRule validates and appends an auto-switch rule.
func (s *Switcher) AddRule(pattern, identityID string) error {
	if err := autoswitch.Validate(pattern, identityID, s.Registry.Exists); err != nil {
		return err
	}
	s.Config.AddRule(pattern, identityID)
	return s.Config.Save(s.configPath)
}

// RemoveRule removes the first rule with the exact pattern string.
// Returns false without error when nothing matched.
func (s *Switcher) RemoveRule(pattern string) (bool, error) {
	if !s.Config.RemoveRule(pattern) {
		return false, nil
	}
	if err := s.Config.Save(s.configPath); err != nil {
		return true, err
	}
	return true, nil
}

// CheckAutoSwitch resolves dir against the rules and switches when one
// matches. A miss is not an error; this runs on every cd.
func (s *Switcher) CheckAutoSwitch(dir string) error {
	if !s.Config.AutoSwitchEnabled {
		return nil
	}
	id, ok := autoswitch.Resolve(s.Config.AutoSwitchRules, dir, s.Registry.Exists)
	if !ok {
		return nil
	}
	return s.Switch(id)
}

// SetupScript clears the session channel and returns the shell setup
// text for the current invocation.
func (s *Switcher) SetupScript(appName, appPath string) (string, error) {
	if err := s.channel.Write(""); err != nil {
		return "", err
	}

	var extra strings.Builder
	guard := ""
	if s.Config.RequireIdentity {
		guard = shell.IdentityGuard(appName)
	}
	extra.WriteString(shell.GitWrapper(guard))
	if s.Config.AutoSwitchEnabled {
		extra.WriteString(shell.AutoSwitchHook(appName))
	}

	return shell.NewEmitter(appName, appPath, s.channel).Setup(extra.String()), nil
}
