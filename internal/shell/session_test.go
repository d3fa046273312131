package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestChannel_PathStablePerSession(t *testing.T) {
	dir := t.TempDir()

	a := NewChannelFor(dir, 1234)
	b := NewChannelFor(dir, 1234)
	if a.Path() != b.Path() {
		t.Errorf("same session, different paths: %q vs %q", a.Path(), b.Path())
	}

	c := NewChannelFor(dir, 5678)
	if a.Path() == c.Path() {
		t.Errorf("distinct sessions share path %q", a.Path())
	}

	if got, want := a.Path(), filepath.Join(dir, "session1234.sh"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestChannel_WriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gus")

	ch := NewChannelFor(dir, 99)
	script := "export GUS_IDENTITY=\"work\"\n"
	if err := ch.Write(script); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(ch.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != script {
		t.Errorf("contents = %q, want %q", data, script)
	}
}

func TestChannel_WriteOverwrites(t *testing.T) {
	ch := NewChannelFor(t.TempDir(), 7)

	if err := ch.Write("export A=\"1\"\n"); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	// An empty write is the "clear" operation used at setup time.
	if err := ch.Write(""); err != nil {
		t.Fatalf("clear Write: %v", err)
	}

	data, err := os.ReadFile(ch.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("contents after clear = %q, want empty", data)
	}
}

func TestNewChannel_UsesParentPid(t *testing.T) {
	ch, err := NewChannel()
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	want := fmt.Sprintf("session%d.sh", os.Getppid())
	if filepath.Base(ch.Path()) != want {
		t.Errorf("Path base = %q, want %q", filepath.Base(ch.Path()), want)
	}
}
