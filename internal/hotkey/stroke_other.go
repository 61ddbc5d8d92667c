//go:build !windows && !linux && !darwin

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// strokeBinding is not implemented on this OS.
func strokeBinding(s keystroke.Stroke) ([][]hotkey.Modifier, hotkey.Key, error) {
	return nil, 0, fmt.Errorf("global hotkeys are not supported on this OS")
}
