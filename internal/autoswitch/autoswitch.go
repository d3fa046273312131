// Package autoswitch resolves directories against the ordered
// auto-switch rule list.
//
// Validation is split in two deliberately: Validate is strict and runs
// once at insertion time, Resolve is tolerant and runs on every
// directory change. A rule that has gone stale (removed identity,
// externally corrupted pattern) simply never matches instead of
// breaking routine shell navigation.
package autoswitch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"

	"github.com/guskit/gus/internal/config"
	"github.com/guskit/gus/internal/identity"
)

// ErrInvalidPattern indicates a glob pattern that does not parse.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// ExpandTilde replaces a leading ~ with the invoking user's home
// directory. If the home directory cannot be resolved the pattern is
// returned unchanged, which makes it never match an absolute path.
func ExpandTilde(pattern string) string {
	if !strings.HasPrefix(pattern, "~") {
		return pattern
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return pattern
	}
	return home + pattern[1:]
}

// Resolve evaluates rules in list order against dir and returns the
// identity id of the first rule whose expanded pattern matches and
// whose identity currently exists. A glob match alone does not win: a
// rule referencing a removed identity is skipped, not an error.
func Resolve(rules []config.Rule, dir string, exists func(id string) bool) (string, bool) {
	for _, r := range rules {
		g, err := glob.Compile(ExpandTilde(r.Pattern), '/')
		if err != nil {
			// Stored pattern no longer parses; treat as never-matching.
			continue
		}
		if g.Match(dir) && exists(r.IdentityID) {
			return r.IdentityID, true
		}
	}
	return "", false
}

// Validate checks a candidate rule before it is accepted into the
// list. The pattern is stored verbatim (tilde unexpanded) so matching
// always reflects the invoking user's home at resolve time.
func Validate(pattern, identityID string, exists func(id string) bool) error {
	if !exists(identityID) {
		return fmt.Errorf("%w: %s", identity.ErrUnknownIdentity, identityID)
	}
	if _, err := glob.Compile(pattern, '/'); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return nil
}
