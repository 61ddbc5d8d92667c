// Package hotkey registers a binding document's keystrokes as OS-global
// hotkeys and dispatches the bound actions when they fire.
package hotkey

import (
	"fmt"
	"log"

	"golang.design/x/hotkey"

	"github.com/keybindery/keybindery/internal/action"
	"github.com/keybindery/keybindery/internal/keystroke"
)

// Manager owns the lifecycle of the globally registered hotkeys.
type Manager struct {
	// registered tracks live registrations by action full name. On
	// X11 one stroke may occupy several slots (lock-state expansion).
	registered map[string][]*hotkey.Hotkey
}

// NewManager creates an empty hotkey manager.
func NewManager() *Manager {
	return &Manager{
		registered: make(map[string][]*hotkey.Hotkey),
	}
}

// RegisterAll replaces the current registrations with one per bound,
// binding-managed action from the source. Strokes the OS-level library
// cannot express are skipped with a warning; the first registration
// failure aborts and is returned.
func (m *Manager) RegisterAll(src action.Source) error {
	m.UnregisterAll()

	if !GlobalHotkeysSupported() {
		return nil
	}

	for fullName, a := range action.AllByFullName(src) {
		stroke := keystroke.Normalize(a.KeyBinding())
		if stroke.IsZero() || stroke.Phase == keystroke.PhaseTyped {
			continue
		}
		if err := m.register(fullName, stroke, a); err != nil {
			return fmt.Errorf("failed to register hotkey %q for action %q: %w", stroke, fullName, err)
		}
	}
	return nil
}

// UnregisterAll removes every registered hotkey.
func (m *Manager) UnregisterAll() {
	for fullName, hks := range m.registered {
		for _, hk := range hks {
			if err := hk.Unregister(); err != nil {
				log.Printf("Error unregistering hotkey for %q: %v", fullName, err)
			}
		}
	}
	m.registered = make(map[string][]*hotkey.Hotkey)
}

func (m *Manager) register(fullName string, stroke keystroke.Stroke, a action.Action) error {
	if _, exists := m.registered[fullName]; exists {
		return nil
	}

	modifierSets, key, err := strokeBinding(stroke)
	if err != nil {
		log.Printf("Warning: skipping global registration of %q for %q: %v", stroke, fullName, err)
		return nil
	}

	var hks []*hotkey.Hotkey
	for _, modifiers := range modifierSets {
		hk := hotkey.New(modifiers, key)
		if err := hk.Register(); err != nil {
			for _, prev := range hks {
				_ = prev.Unregister()
			}
			return err
		}
		hks = append(hks, hk)

		go func(hk *hotkey.Hotkey) {
			for range hk.Keydown() {
				log.Printf("Hotkey %q pressed. Dispatching action: %s", stroke, fullName)
				a.Perform()
			}
		}(hk)
	}

	m.registered[fullName] = hks
	log.Printf("Registered global hotkey %q for action: %s", stroke, fullName)
	return nil
}
