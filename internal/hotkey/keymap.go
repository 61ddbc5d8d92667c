package hotkey

import (
	"golang.design/x/hotkey"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// codeMap maps keystroke codes to the keys the OS-level hotkey library
// understands. Keys outside this set cannot be registered globally;
// they still work as widget-local bindings.
var codeMap = map[keystroke.Code]hotkey.Key{
	// Letters
	keystroke.Code('A'): hotkey.KeyA,
	keystroke.Code('B'): hotkey.KeyB,
	keystroke.Code('C'): hotkey.KeyC,
	keystroke.Code('D'): hotkey.KeyD,
	keystroke.Code('E'): hotkey.KeyE,
	keystroke.Code('F'): hotkey.KeyF,
	keystroke.Code('G'): hotkey.KeyG,
	keystroke.Code('H'): hotkey.KeyH,
	keystroke.Code('I'): hotkey.KeyI,
	keystroke.Code('J'): hotkey.KeyJ,
	keystroke.Code('K'): hotkey.KeyK,
	keystroke.Code('L'): hotkey.KeyL,
	keystroke.Code('M'): hotkey.KeyM,
	keystroke.Code('N'): hotkey.KeyN,
	keystroke.Code('O'): hotkey.KeyO,
	keystroke.Code('P'): hotkey.KeyP,
	keystroke.Code('Q'): hotkey.KeyQ,
	keystroke.Code('R'): hotkey.KeyR,
	keystroke.Code('S'): hotkey.KeyS,
	keystroke.Code('T'): hotkey.KeyT,
	keystroke.Code('U'): hotkey.KeyU,
	keystroke.Code('V'): hotkey.KeyV,
	keystroke.Code('W'): hotkey.KeyW,
	keystroke.Code('X'): hotkey.KeyX,
	keystroke.Code('Y'): hotkey.KeyY,
	keystroke.Code('Z'): hotkey.KeyZ,

	// Digits
	keystroke.Code('0'): hotkey.Key0,
	keystroke.Code('1'): hotkey.Key1,
	keystroke.Code('2'): hotkey.Key2,
	keystroke.Code('3'): hotkey.Key3,
	keystroke.Code('4'): hotkey.Key4,
	keystroke.Code('5'): hotkey.Key5,
	keystroke.Code('6'): hotkey.Key6,
	keystroke.Code('7'): hotkey.Key7,
	keystroke.Code('8'): hotkey.Key8,
	keystroke.Code('9'): hotkey.Key9,

	// Function keys
	keystroke.CodeF1:  hotkey.KeyF1,
	keystroke.CodeF2:  hotkey.KeyF2,
	keystroke.CodeF3:  hotkey.KeyF3,
	keystroke.CodeF4:  hotkey.KeyF4,
	keystroke.CodeF5:  hotkey.KeyF5,
	keystroke.CodeF6:  hotkey.KeyF6,
	keystroke.CodeF7:  hotkey.KeyF7,
	keystroke.CodeF8:  hotkey.KeyF8,
	keystroke.CodeF9:  hotkey.KeyF9,
	keystroke.CodeF10: hotkey.KeyF10,
	keystroke.CodeF11: hotkey.KeyF11,
	keystroke.CodeF12: hotkey.KeyF12,

	// Special keys
	keystroke.CodeSpace:  hotkey.KeySpace,
	keystroke.CodeTab:    hotkey.KeyTab,
	keystroke.CodeEnter:  hotkey.KeyReturn,
	keystroke.CodeEscape: hotkey.KeyEscape,
}
