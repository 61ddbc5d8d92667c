//go:build linux

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// X11 lock masks that commonly interfere with XGrabKey. CapsLock is
// LockMask (1<<1); NumLock is usually Mod2.
const linuxCapsLockMask hotkey.Modifier = 1 << 1

// strokeBinding converts a normalized stroke into the hotkey library's
// modifier/key form. Linux (X11) implementation notes: Alt is Mod1,
// Super/Win is Mod4, and the same combination is expanded over the
// common lock-modifier states so it still triggers with NumLock or
// CapsLock enabled.
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
		modifiers = append(modifiers, hotkey.Mod1)
	}
	if s.Mods.HasShift() {
		modifiers = append(modifiers, hotkey.ModShift)
	}
	if s.Mods.HasMeta() {
		modifiers = append(modifiers, hotkey.Mod4)
	}

	return expandModifiers(modifiers), key, nil
}

func expandModifiers(modifiers []hotkey.Modifier) [][]hotkey.Modifier {
	base := append([]hotkey.Modifier(nil), modifiers...)
	withNum := append(append([]hotkey.Modifier(nil), modifiers...), hotkey.Mod2)
	withCaps := append(append([]hotkey.Modifier(nil), modifiers...), linuxCapsLockMask)
	withBoth := append(append([]hotkey.Modifier(nil), modifiers...), hotkey.Mod2, linuxCapsLockMask)

	return [][]hotkey.Modifier{base, withNum, withCaps, withBoth}
}
