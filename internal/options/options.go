// Package options holds the binding-options document: a named set of
// entries mapping an action's full name to its bound keystroke. The
// document serializes to XML and round-trips losslessly.
package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/keybindery/keybindery/internal/action"
	"github.com/keybindery/keybindery/internal/keystroke"
)

// Options is a named collection of key-binding entries. Full names are
// unique within a document (map semantics); dedup happens before a
// document is built.
type Options struct {
	name     string
	bindings map[string]keystroke.Stroke
}

// New returns an empty document with the given name.
func New(name string) *Options {
	return &Options{
		name:     name,
		bindings: make(map[string]keystroke.Stroke),
	}
}

// FromActions builds a document from actions keyed by full name, the
// shape produced by action.AllByFullName. Unbound actions are recorded
// with an absent stroke so that importing the document can clear them.
func FromActions(name string, actions map[string]action.Action) *Options {
	o := New(name)
	for fullName, a := range actions {
		o.SetKeyStroke(fullName, a.KeyBinding())
	}
	return o
}

// Name returns the document name.
func (o *Options) Name() string { return o.name }

// Len returns the number of entries.
func (o *Options) Len() int { return len(o.bindings) }

// SetKeyStroke records the binding for an action's full name. A zero
// stroke records the entry as explicitly unbound.
func (o *Options) SetKeyStroke(fullName string, s keystroke.Stroke) {
	o.bindings[fullName] = s
}

// KeyStroke returns the stroke bound to the full name, zero when the
// entry is absent or unbound.
func (o *Options) KeyStroke(fullName string) keystroke.Stroke {
	return o.bindings[fullName]
}

// Contains reports whether the document has an entry for the full name.
func (o *Options) Contains(fullName string) bool {
	_, ok := o.bindings[fullName]
	return ok
}

// Remove deletes the entry for the full name.
func (o *Options) Remove(fullName string) {
	delete(o.bindings, fullName)
}

// ActionNames returns the entry names in sorted order.
func (o *Options) ActionNames() []string {
	names := make([]string, 0, len(o.bindings))
	for name := range o.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two documents have the same name, entries and
// strokes.
func (o *Options) Equal(other *Options) bool {
	if other == nil || o.name != other.name || len(o.bindings) != len(other.bindings) {
		return false
	}
	for name, s := range o.bindings {
		otherStroke, ok := other.bindings[name]
		if !ok || otherStroke != s {
			return false
		}
	}
	return true
}

// Summary renders the document as a sorted, line-per-entry text
// listing. Used for the clipboard copy action and for diffing two
// documents after an import.
func (o *Options) Summary() string {
	var b strings.Builder
	for _, name := range o.ActionNames() {
		s := o.bindings[name]
		if s.IsZero() {
			fmt.Fprintf(&b, "%s = <unbound>\n", name)
		} else {
			fmt.Fprintf(&b, "%s = %s\n", name, s)
		}
	}
	return b.String()
}
