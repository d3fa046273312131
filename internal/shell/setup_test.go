package shell

import (
	"strings"
	"testing"
)

func testEmitter() Emitter {
	return Emitter{
		AppName:     "gus",
		AppPath:     "/usr/local/bin/gus",
		SessionPath: "/tmp/gus/session42.sh",
	}
}

func TestEmitter_SetupGrammar(t *testing.T) {
	script := testEmitter().Setup("")

	for _, want := range []string{
		`if [ -z "${GUS_LOADED}" ]; then`,
		"export GUS_LOADED=1",
		`rm -f "/tmp/gus/session42.sh"`,
		"gus() {",
		`"/usr/local/bin/gus" "$@"`,
		"status=$?",
		"return $status",
		`. "/tmp/gus/session42.sh"`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("setup script missing %q:\n%s", want, script)
		}
	}

	if !strings.HasSuffix(script, "fi\n") {
		t.Errorf("setup script does not close the guard:\n%s", script)
	}
}

func TestEmitter_SetupSourcesOnlyOnSuccess(t *testing.T) {
	script := testEmitter().Setup("")

	// The wrapper must return the exit status before sourcing the
	// session file, so a failed invocation never mutates the shell.
	ret := strings.Index(script, "return $status")
	src := strings.Index(script, `. "/tmp/gus/session42.sh"`)
	if ret == -1 || src == -1 || ret > src {
		t.Errorf("source must come after the failure return:\n%s", script)
	}
}

func TestEmitter_ExtraScriptVerbatim(t *testing.T) {
	extra := "    my_custom_hook() { true; }\n"
	script := testEmitter().Setup(extra)

	if !strings.Contains(script, extra) {
		t.Errorf("extra fragment not inserted verbatim:\n%s", script)
	}
	// The extra fragment lives inside the install guard.
	if strings.Index(script, extra) > strings.LastIndex(script, "fi\n") {
		t.Errorf("extra fragment emitted outside the guard:\n%s", script)
	}
}

func TestGitWrapper(t *testing.T) {
	plain := GitWrapper("")
	if !strings.Contains(plain, "git() {") || !strings.Contains(plain, `command git "$@"`) {
		t.Errorf("plain wrapper malformed:\n%s", plain)
	}

	guarded := GitWrapper(IdentityGuard("gus"))
	for _, want := range []string{
		`if [ -z "${GUS_IDENTITY}" ]; then`,
		"gus list >&2",
		`gus set "$gus_identity_id"`,
		`command git "$@"`,
	} {
		if !strings.Contains(guarded, want) {
			t.Errorf("guarded wrapper missing %q:\n%s", want, guarded)
		}
	}

	// The guard must run before git does.
	if strings.Index(guarded, "GUS_IDENTITY") > strings.Index(guarded, `command git "$@"`) {
		t.Errorf("guard emitted after git delegation:\n%s", guarded)
	}
}

func TestAutoSwitchHook(t *testing.T) {
	hook := AutoSwitchHook("gus")
	for _, want := range []string{
		"cd() {",
		`command cd "$@"`,
		"gus auto-switch check",
	} {
		if !strings.Contains(hook, want) {
			t.Errorf("cd hook missing %q:\n%s", want, hook)
		}
	}
}
