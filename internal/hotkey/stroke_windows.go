//go:build windows

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// strokeBinding converts a normalized stroke into the hotkey library's
// modifier/key form. On Windows, Meta is the Windows key.
func strokeBinding(s keystroke.Stroke) ([][]hotkey.Modifier, hotkey.Key, error) {
	key, ok := codeMap[s.Code]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported key: %s", s.Code.Name())
	}

	var modifiers []hotkey.Modifier
	if s.Mods.HasCtrl() {
		modifiers = append(modifiers, hotkey.ModCtrl)
	}
	if s.Mods.HasAlt() {
		modifiers = append(modifiers, hotkey.ModAlt)
	}
	if s.Mods.HasShift() {
		modifiers = append(modifiers, hotkey.ModShift)
	}
	if s.Mods.HasMeta() {
		modifiers = append(modifiers, hotkey.ModWin)
	}

	return [][]hotkey.Modifier{modifiers}, key, nil
}
