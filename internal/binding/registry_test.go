package binding

import (
	"bytes"
	"log"
	"testing"

	"github.com/keybindery/keybindery/internal/action"
	"github.com/keybindery/keybindery/internal/keystroke"
)

func testAction(name string) *action.BasicAction {
	return &action.BasicAction{ActionName: name, ActionOwner: "TestOwner"}
}

func TestRegisterAndLookup(t *testing.T) {
	w := NewBasicWidget()
	a := testAction("Undo")
	stroke := keystroke.MustParse("Ctrl-Z")

	Register(w, stroke, a, WhenFocused)

	got := Lookup(w, stroke, WhenFocused)
	if got != action.Action(a) {
		t.Fatalf("Lookup returned %v, want the registered action", got)
	}
}

func TestRegister_ZeroStrokeIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	w := NewBasicWidget()
	Register(w, keystroke.Stroke{}, testAction("Undo"), WhenFocused)

	if n := len(w.InputMap(WhenFocused)); n != 0 {
		t.Errorf("input map has %d entries, want 0", n)
	}
	if n := len(w.ActionMap()); n != 0 {
		t.Errorf("action map has %d entries, want 0", n)
	}
	if !bytes.Contains(buf.Bytes(), []byte("without providing a keystroke")) {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}

func TestRegister_ReusesExistingMappingName(t *testing.T) {
	w := NewBasicWidget()
	stroke := keystroke.MustParse("Ctrl-Z")
	first := testAction("Undo")
	second := testAction("Redo")

	Register(w, stroke, first, WhenFocused)
	Register(w, stroke, second, WhenFocused)

	// The stroke keeps its original mapping name; the action table
	// entry under that name now points at the new action.
	if name := w.InputMap(WhenFocused)[stroke]; name != "Undo" {
		t.Errorf("mapping name = %q, want %q", name, "Undo")
	}
	got := Lookup(w, stroke, WhenFocused)
	if got != action.Action(second) {
		t.Errorf("Lookup returned %v, want the second action", got)
	}
}

func TestRegister_ScopesAreIndependent(t *testing.T) {
	w := NewBasicWidget()
	stroke := keystroke.MustParse("F5")
	a := testAction("Refresh")

	Register(w, stroke, a, WhenInWindow)

	if got := Lookup(w, stroke, WhenFocused); got != nil {
		t.Errorf("Lookup in WhenFocused = %v, want nil", got)
	}
	if got := Lookup(w, stroke, WhenInWindow); got != action.Action(a) {
		t.Errorf("Lookup in WhenInWindow = %v, want the registered action", got)
	}
}

func TestClear_SuppressesBinding(t *testing.T) {
	w := NewBasicWidget()
	stroke := keystroke.MustParse("Ctrl-C")
	Register(w, stroke, testAction("Copy"), WhenFocused)

	Clear(w, stroke, WhenFocused)

	if name := w.InputMap(WhenFocused)[stroke]; name != NoAction {
		t.Errorf("mapping name after Clear = %q, want %q", name, NoAction)
	}
	if got := Lookup(w, stroke, WhenFocused); got != nil {
		t.Errorf("Lookup after Clear = %v, want nil", got)
	}
	// The action table entry survives so re-registering the stroke can
	// find the action again.
	if _, ok := w.ActionMap()["Copy"]; !ok {
		t.Error("action table entry was removed by Clear")
	}
}

func TestClear_UnmappedStroke(t *testing.T) {
	w := NewBasicWidget()
	stroke := keystroke.MustParse("Ctrl-Q")

	Clear(w, stroke, WhenFocused)

	if got := Lookup(w, stroke, WhenFocused); got != nil {
		t.Errorf("Lookup = %v, want nil", got)
	}
}

func TestLookup_UnknownStroke(t *testing.T) {
	w := NewBasicWidget()
	if got := Lookup(w, keystroke.MustParse("Ctrl-Z"), WhenFocused); got != nil {
		t.Errorf("Lookup = %v, want nil", got)
	}
}
