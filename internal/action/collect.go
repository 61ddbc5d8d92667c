package action

import (
	"log"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// ignored reports whether an action is excluded from binding documents:
// either the binding system does not manage it, or a single shared
// proxy stands in for it. Tracking such actions individually would let
// them overwrite their shared proxy.
func ignored(a Action) bool {
	return !a.IsBindingManaged() || a.UsesSharedBinding()
}

// AllByFullName collects every binding-managed action known to the
// source, deduplicated by full name. Duplicate full names should not
// occur; when they do, the last one wins.
func AllByFullName(src Source) map[string]Action {
	deduper := make(map[string]Action)
	for _, a := range src.AllActions() {
		if ignored(a) {
			continue
		}
		deduper[a.FullName()] = a
	}
	return deduper
}

// ForOwner collects the binding-managed actions registered by one
// owner, deduplicated by full name.
func ForOwner(src Source, owner string) []Action {
	deduper := make(map[string]Action)
	for _, a := range src.ActionsByOwner(owner) {
		if ignored(a) {
			continue
		}
		deduper[a.FullName()] = a
	}
	result := make([]Action, 0, len(deduper))
	for _, a := range deduper {
		result = append(result, a)
	}
	return result
}

// Matching returns the subset of actions whose owner and name both
// match exactly.
func Matching(actions []Action, owner, name string) []Action {
	var result []Action
	for _, a := range actions {
		if a.Owner() == owner && a.Name() == name {
			result = append(result, a)
		}
	}
	return result
}

// AssertSameDefaultBindings checks the new action's default binding
// against each existing action. Actions sharing an identity must share
// a default; on the first mismatch one warning is logged, with both
// actions' provenance and strokes, and checking stops. One warning per
// call is enough.
func AssertSameDefaultBindings(newAction Action, existing []Action) {
	newDefault := newAction.DefaultKeyBinding()
	for _, a := range existing {
		existingDefault := a.DefaultKeyBinding()
		if existingDefault != newDefault {
			logDifferentDefaultBindings(newAction, a, existingDefault)
			break
		}
	}
}

func logDifferentDefaultBindings(newAction, existingAction Action, existingDefault keystroke.Stroke) {
	log.Printf("Warning: shared key binding actions have different default values; these must be the same.\n"+
		"\tAction name: %q\n"+
		"\tAction 1: %s\n"+
		"\t\tKey Binding: %s\n"+
		"\tAction 2: %s\n"+
		"\t\tKey Binding: %s\n"+
		"Using the first value set - %s",
		existingAction.Name(),
		existingAction.Inception(), existingDefault,
		newAction.Inception(), newAction.KeyBinding(),
		existingDefault)
}
