package keystroke

// Code identifies a keyboard key independent of any windowing toolkit.
// Letter and digit keys use their ASCII uppercase value; special keys
// use values above the ASCII range.
type Code int

// CodeNone is the zero Code, meaning "no key".
const CodeNone Code = 0

// Special (non-character) key codes.
const (
	CodeEnter Code = iota + 0x100
	CodeEscape
	CodeTab
	CodeSpace
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// specialNames maps special key codes to their canonical names.
// Letter and digit keys are derived from their code value directly.
var specialNames = map[Code]string{
	CodeEnter:     "ENTER",
	CodeEscape:    "ESCAPE",
	CodeTab:       "TAB",
	CodeSpace:     "SPACE",
	CodeBackspace: "BACKSPACE",
	CodeDelete:    "DELETE",
	CodeInsert:    "INSERT",
	CodeHome:      "HOME",
	CodeEnd:       "END",
	CodePageUp:    "PAGE_UP",
	CodePageDown:  "PAGE_DOWN",
	CodeUp:        "UP",
	CodeDown:      "DOWN",
	CodeLeft:      "LEFT",
	CodeRight:     "RIGHT",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
}

// keyCodes maps canonical (uppercase) key names to codes. Populated in
// init from specialNames plus letters, digits and a few common aliases.
var keyCodes = map[string]Code{}

func init() {
	for code, name := range specialNames {
		keyCodes[name] = code
	}
	for c := 'A'; c <= 'Z'; c++ {
		keyCodes[string(c)] = Code(c)
	}
	for c := '0'; c <= '9'; c++ {
		keyCodes[string(c)] = Code(c)
	}

	// Aliases accepted on input but never produced on output.
	keyCodes["ESC"] = CodeEscape
	keyCodes["RETURN"] = CodeEnter
	keyCodes["DEL"] = CodeDelete
	keyCodes["INS"] = CodeInsert
	keyCodes["PGUP"] = CodePageUp
	keyCodes["PGDN"] = CodePageDown
	keyCodes["PAGEUP"] = CodePageUp
	keyCodes["PAGEDOWN"] = CodePageDown
}

// Name returns the canonical name for the code, such as "Z", "F4" or
// "PAGE_UP". It returns the empty string for CodeNone or unknown codes.
func (c Code) Name() string {
	if name, ok := specialNames[c]; ok {
		return name
	}
	if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return string(rune(c))
	}
	return ""
}

// CodeFromName looks up a key code by name. The lookup is
// case-insensitive only in the sense that callers are expected to pass
// uppercase names; Parse upper-cases key tokens before calling this.
func CodeFromName(name string) (Code, bool) {
	code, ok := keyCodes[name]
	return code, ok
}
