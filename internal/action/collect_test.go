package action

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/keybindery/keybindery/internal/keystroke"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestAllByFullName(t *testing.T) {
	src := List{
		&BasicAction{ActionName: "Copy", ActionOwner: "Editor"},
		&BasicAction{ActionName: "Copy", ActionOwner: "Console"},
		&BasicAction{ActionName: "Paste", ActionOwner: "Editor"},
	}

	all := AllByFullName(src)

	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for _, fullName := range []string{"Copy (Editor)", "Copy (Console)", "Paste (Editor)"} {
		if _, ok := all[fullName]; !ok {
			t.Errorf("missing %q", fullName)
		}
	}
}

func TestAllByFullName_SkipsIgnoredActions(t *testing.T) {
	src := List{
		&BasicAction{ActionName: "Copy", ActionOwner: "Editor"},
		&BasicAction{ActionName: "Hidden", ActionOwner: "Editor", Unmanaged: true},
		&BasicAction{ActionName: "Shared", ActionOwner: "Editor", SharedBinding: true},
	}

	all := AllByFullName(src)

	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if _, ok := all["Copy (Editor)"]; !ok {
		t.Error("missing Copy (Editor)")
	}
}

func TestAllByFullName_DeduplicatesFullNames(t *testing.T) {
	first := &BasicAction{ActionName: "Copy", ActionOwner: "Editor"}
	second := &BasicAction{ActionName: "Copy", ActionOwner: "Editor"}
	src := List{first, second}

	all := AllByFullName(src)

	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all["Copy (Editor)"] != Action(second) {
		t.Error("expected the last duplicate to win")
	}
}

func TestForOwner(t *testing.T) {
	src := List{
		&BasicAction{ActionName: "Copy", ActionOwner: "Editor"},
		&BasicAction{ActionName: "Paste", ActionOwner: "Editor"},
		&BasicAction{ActionName: "Copy", ActionOwner: "Console"},
		&BasicAction{ActionName: "Hidden", ActionOwner: "Editor", Unmanaged: true},
	}

	got := ForOwner(src, "Editor")

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, a := range got {
		if a.Owner() != "Editor" {
			t.Errorf("owner = %q, want Editor", a.Owner())
		}
	}
}

func TestMatching(t *testing.T) {
	actions := []Action{
		&BasicAction{ActionName: "Copy", ActionOwner: "Editor"},
		&BasicAction{ActionName: "Copy", ActionOwner: "Console"},
		&BasicAction{ActionName: "Paste", ActionOwner: "Editor"},
	}

	got := Matching(actions, "Editor", "Copy")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	if got := Matching(actions, "Editor", "Cut"); got != nil {
		t.Errorf("Matching for absent name = %v, want nil", got)
	}
}

func TestAssertSameDefaultBindings_MatchingDefaultsAreQuiet(t *testing.T) {
	buf := capture(t)
	def := keystroke.MustParse("Ctrl-C")

	existing := []Action{
		&BasicAction{ActionName: "Copy", ActionOwner: "Editor", Default: def},
		&BasicAction{ActionName: "Copy", ActionOwner: "Console", Default: def},
	}
	newAction := &BasicAction{ActionName: "Copy", ActionOwner: "Terminal", Default: def}

	AssertSameDefaultBindings(newAction, existing)

	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestAssertSameDefaultBindings_WarnsExactlyOnce(t *testing.T) {
	buf := capture(t)

	existing := []Action{
		&BasicAction{ActionName: "Copy", ActionOwner: "Editor", Default: keystroke.MustParse("Ctrl-X")},
		&BasicAction{ActionName: "Copy", ActionOwner: "Console", Default: keystroke.MustParse("Ctrl-V")},
	}
	newAction := &BasicAction{ActionName: "Copy", ActionOwner: "Terminal", Default: keystroke.MustParse("Ctrl-C")}

	AssertSameDefaultBindings(newAction, existing)

	warnings := strings.Count(buf.String(), "different default values")
	if warnings != 1 {
		t.Errorf("warning count = %d, want 1\nlog: %s", warnings, buf.String())
	}
}

func TestBasicAction_FullNameAndInception(t *testing.T) {
	a := &BasicAction{ActionName: "Copy", ActionOwner: "Editor"}
	if got := a.FullName(); got != "Copy (Editor)" {
		t.Errorf("FullName = %q, want %q", got, "Copy (Editor)")
	}
	if got := a.Inception(); got != "Copy (Editor)" {
		t.Errorf("Inception = %q, want the full name fallback", got)
	}

	a.Origin = "editor.go:42"
	if got := a.Inception(); got != "editor.go:42" {
		t.Errorf("Inception = %q, want %q", got, "editor.go:42")
	}
}

func TestBasicAction_Perform(t *testing.T) {
	ran := false
	a := &BasicAction{ActionName: "Run", ActionOwner: "Test", Do: func() { ran = true }}
	a.Perform()
	if !ran {
		t.Error("Perform did not invoke Do")
	}

	// nil Do must not panic
	(&BasicAction{ActionName: "Noop", ActionOwner: "Test"}).Perform()
}
