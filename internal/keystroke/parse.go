package keystroke

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Parse errors.
var (
	ErrNoKey          = errors.New("keystroke string contains no key")
	ErrUnsupportedKey = errors.New("unsupported key")
)

// Parse converts a free-form keystroke string into a Stroke. Tokens may
// be separated by dashes or spaces, modifiers may appear in any order
// and any case, and duplicate tokens are collapsed. All of the
// following are accepted:
//
//	Alt-F
//	alt p
//	Ctrl-Alt-Z
//	ctrl Z
//
// Exactly one non-modifier token is expected: the key name. A string
// with no key token fails with ErrNoKey. A string with more than one
// key token is tolerated: the first one wins and a warning is logged.
// Parsed strokes are always pressed-phase; "pressed", "typed" and
// "released" tokens are consumed without effect.
func Parse(s string) (Stroke, error) {
	var pieces []string
	seen := map[string]bool{}
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ' '
	}) {
		if !seen[tok] {
			seen[tok] = true
			pieces = append(pieces, tok)
		}
	}

	var mods Modifier
	leftover := pieces[:0]
	for _, piece := range pieces {
		lower := strings.ToLower(piece)
		switch {
		case strings.Contains(lower, "shift"):
			mods |= ModShift
		case strings.Contains(lower, "ctrl"):
			mods |= ModCtrl
		case strings.Contains(lower, "control"):
			mods |= ModCtrl
		case strings.Contains(lower, "alt"):
			mods |= ModAlt
		case strings.Contains(lower, "meta"):
			mods |= ModMeta
		case strings.Contains(lower, "pressed"),
			strings.Contains(lower, "typed"),
			strings.Contains(lower, "released"):
			// phase markers carry no modifier; parsed strokes are
			// always pressed-phase
		default:
			leftover = append(leftover, piece)
		}
	}

	if len(leftover) == 0 {
		log.Printf("Warning: invalid keystroke string; expected format of '[modifier] ... key', found: %q", s)
		return Stroke{}, fmt.Errorf("%w: %q", ErrNoKey, s)
	}
	if len(leftover) > 1 {
		log.Printf("Warning: invalid keystroke string; expected format of '[modifier] ... key', found: %q", s)
	}

	name := strings.ToUpper(leftover[0])
	code, ok := CodeFromName(name)
	if !ok {
		log.Printf("Warning: unsupported key %q in keystroke string %q", leftover[0], s)
		return Stroke{}, fmt.Errorf("%w: %q", ErrUnsupportedKey, leftover[0])
	}

	return New(code, mods), nil
}

// MustParse parses a keystroke string known to be valid and panics when
// it is not. Intended for default bindings declared in code.
func MustParse(s string) Stroke {
	stroke, err := Parse(s)
	if err != nil {
		panic("keystroke: " + err.Error())
	}
	return stroke
}
