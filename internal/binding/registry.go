// Package binding associates keystrokes with actions inside a widget's
// own input and action tables. Everything here mutates only the maps
// the caller hands over; no process-wide state is touched.
package binding

import (
	"log"

	"github.com/keybindery/keybindery/internal/action"
	"github.com/keybindery/keybindery/internal/keystroke"
)

// FocusScope is the widget-local condition under which a binding fires.
type FocusScope int

const (
	// WhenFocused activates the binding while the widget itself has
	// input focus. This is the default scope.
	WhenFocused FocusScope = iota
	// WhenAncestorFocused activates the binding while any descendant of
	// the widget has focus.
	WhenAncestorFocused
	// WhenInWindow activates the binding while the widget's window has
	// focus.
	WhenInWindow
)

// NoAction is the sentinel mapping target installed by Clear. A stroke
// mapped to it dispatches nothing and suppresses any inherited default
// behavior for that stroke.
const NoAction = "none"

// InputMap maps strokes to mapping names within one focus scope.
type InputMap map[keystroke.Stroke]string

// ActionMap maps mapping names to actions.
type ActionMap map[string]action.Action

// Widget is the minimal surface a UI component must expose for binding
// registration: a per-scope input map and an action table, both owned
// and mutated in place by the widget.
type Widget interface {
	InputMap(scope FocusScope) InputMap
	ActionMap() ActionMap
}

// Register binds the stroke to the action in the widget's input map for
// the given scope. A zero stroke is a logged no-op, as is a widget
// without maps for the scope. When the stroke is already mapped to a
// name, that name is reused; otherwise the action's display name
// becomes the mapping target. The action table entry for the name is
// overwritten either way.
func Register(w Widget, stroke keystroke.Stroke, a action.Action, scope FocusScope) {
	if stroke.IsZero() {
		name := ""
		if a != nil {
			name = a.Name()
		}
		log.Printf("Attempted to register an action without providing a keystroke - action: %s", name)
		return
	}

	im := w.InputMap(scope)
	if im == nil {
		return
	}
	am := w.ActionMap()
	if am == nil {
		return
	}

	name, ok := im[stroke]
	if !ok {
		// no binding--just pick a name
		name = a.Name()
		im[stroke] = name
	}
	am[name] = a
}

// Clear maps the stroke to the NoAction sentinel in the given scope,
// suppressing any inherited or platform default behavior for that
// keystroke. The action table is left untouched.
func Clear(w Widget, stroke keystroke.Stroke, scope FocusScope) {
	im := w.InputMap(scope)
	am := w.ActionMap()
	if im == nil || am == nil {
		return
	}
	im[stroke] = NoAction
}

// Lookup returns the action currently bound to the stroke in the given
// scope, or nil when the stroke is unmapped or cleared.
func Lookup(w Widget, stroke keystroke.Stroke, scope FocusScope) action.Action {
	im := w.InputMap(scope)
	am := w.ActionMap()
	if im == nil || am == nil {
		return nil
	}
	name, ok := im[stroke]
	if !ok {
		return nil
	}
	return am[name]
}
