// Package action defines the dispatchable-action contract consumed by
// the binding registry and the import/export machinery, plus utilities
// for collecting and validating actions.
package action

import (
	"fmt"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// Action is any dispatchable UI operation that can have a key binding.
// Implementations are owned by the surrounding action-management
// system; this package only reads them.
type Action interface {
	// Name is the action's display name.
	Name() string

	// Owner names the component that registered the action.
	Owner() string

	// FullName is the composite "Name (Owner)" identity. Full names are
	// unique within a binding document.
	FullName() string

	// KeyBinding is the currently assigned stroke, zero when unbound.
	KeyBinding() keystroke.Stroke

	// DefaultKeyBinding is the stroke assigned at registration time,
	// zero when the action has no default.
	DefaultKeyBinding() keystroke.Stroke

	// IsBindingManaged reports whether the binding system manages this
	// action. Unmanaged actions never appear in binding documents.
	IsBindingManaged() bool

	// UsesSharedBinding reports whether the action is represented by a
	// single shared proxy binding rather than its own entry.
	UsesSharedBinding() bool

	// Inception describes where the action was created, for diagnostics.
	Inception() string

	// Perform executes the action.
	Perform()
}

// Source provides access to the universe of registered actions,
// typically backed by the application's action manager.
type Source interface {
	AllActions() []Action
	ActionsByOwner(owner string) []Action
}

// BasicAction is a plain Action implementation for callers that do not
// have their own action type.
type BasicAction struct {
	ActionName    string
	ActionOwner   string
	Binding       keystroke.Stroke
	Default       keystroke.Stroke
	Unmanaged     bool
	SharedBinding bool
	Origin        string
	Do            func()
}

func (a *BasicAction) Name() string  { return a.ActionName }
func (a *BasicAction) Owner() string { return a.ActionOwner }

func (a *BasicAction) FullName() string {
	return fmt.Sprintf("%s (%s)", a.ActionName, a.ActionOwner)
}

func (a *BasicAction) KeyBinding() keystroke.Stroke        { return a.Binding }
func (a *BasicAction) DefaultKeyBinding() keystroke.Stroke { return a.Default }
func (a *BasicAction) IsBindingManaged() bool              { return !a.Unmanaged }
func (a *BasicAction) UsesSharedBinding() bool             { return a.SharedBinding }

func (a *BasicAction) Inception() string {
	if a.Origin == "" {
		return a.FullName()
	}
	return a.Origin
}

func (a *BasicAction) Perform() {
	if a.Do != nil {
		a.Do()
	}
}
