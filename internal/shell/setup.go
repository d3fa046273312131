package shell

import (
	"fmt"
	"strings"
)

// Emitter renders the setup script sourced by the user's shell rc. It
// is pure text generation: all I/O-derived inputs are captured in the
// struct so the emitted grammar can be tested as plain strings.
type Emitter struct {
	// AppName is the invocation name the wrapper function is bound to.
	AppName string

	// AppPath is the absolute path of the real executable.
	AppPath string

	// SessionPath is the session channel file for this shell.
	SessionPath string
}

// NewEmitter builds an emitter for the current process and the given
// channel.
func NewEmitter(appName, appPath string, c *Channel) Emitter {
	return Emitter{AppName: appName, AppPath: appPath, SessionPath: c.Path()}
}

// Setup returns the shell source text that installs the integration:
// a guard flag so repeated sourcing is a no-op, removal of any stale
// session file, a wrapper function that forwards to the real
// executable and sources the session file on success, and the extra
// fragment verbatim. It never executes shell code or touches files.
func (e Emitter) Setup(extra string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "if [ -z \"${%s}\" ]; then\n", EnvLoaded)
	fmt.Fprintf(&b, "    export %s=1\n", EnvLoaded)
	fmt.Fprintf(&b, "    rm -f \"%s\"\n", e.SessionPath)
	fmt.Fprintf(&b, "    %s() {\n", e.AppName)
	fmt.Fprintf(&b, "        \"%s\" \"$@\"\n", e.AppPath)
	b.WriteString("        status=$?\n")
	b.WriteString("        if [ $status -ne 0 ]; then\n")
	b.WriteString("            return $status\n")
	b.WriteString("        fi\n")
	fmt.Fprintf(&b, "        if [ -f \"%s\" ]; then\n", e.SessionPath)
	fmt.Fprintf(&b, "            . \"%s\"\n", e.SessionPath)
	b.WriteString("        fi\n")
	b.WriteString("    }\n")
	b.WriteString(extra)
	b.WriteString("fi\n")
	return b.String()
}

// GitWrapper returns the git() function that shadows the real git.
// guard is inserted before the delegation; pass "" for a plain
// pass-through wrapper.
func GitWrapper(guard string) string {
	var b strings.Builder
	b.WriteString("    git() {\n")
	b.WriteString(guard)
	b.WriteString("        command git \"$@\"\n")
	b.WriteString("    }\n")
	return b.String()
}

// IdentityGuard returns the fragment that blocks git use until an
// identity is active, prompting for one inline. appName must be the
// wrapper function name so the selection is sourced back into the
// shell.
func IdentityGuard(appName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "        if [ -z \"${%s}\" ]; then\n", EnvIdentity)
	fmt.Fprintf(&b, "            echo \"An identity is required. Register one with '%s add' first.\" >&2\n", appName)
	b.WriteString("            echo \"=== Available identities: ===\" >&2\n")
	fmt.Fprintf(&b, "            %s list >&2\n", appName)
	b.WriteString("            printf \"Enter identity id: \" >&2\n")
	b.WriteString("            read gus_identity_id\n")
	fmt.Fprintf(&b, "            %s set \"$gus_identity_id\"\n", appName)
	b.WriteString("            status=$?\n")
	b.WriteString("            if [ $status -ne 0 ]; then\n")
	b.WriteString("                return $status\n")
	b.WriteString("            fi\n")
	b.WriteString("        fi\n")
	return b.String()
}

// AutoSwitchHook returns the cd() wrapper that re-evaluates the
// auto-switch rules after every directory change.
func AutoSwitchHook(appName string) string {
	var b strings.Builder
	b.WriteString("    cd() {\n")
	b.WriteString("        command cd \"$@\" || return $?\n")
	fmt.Fprintf(&b, "        %s auto-switch check\n", appName)
	b.WriteString("    }\n")
	return b.String()
}
