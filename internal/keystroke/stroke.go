package keystroke

import "strings"

// Phase describes which kind of key event a Stroke represents.
type Phase uint8

const (
	// PhasePressed triggers when the key goes down.
	PhasePressed Phase = iota
	// PhaseReleased triggers when the key comes up.
	PhaseReleased
	// PhaseTyped triggers on a character-typed notification.
	PhaseTyped
)

// Stroke is an immutable key-event descriptor: a key code (or typed
// character), a modifier bitset and a phase. Strokes are plain values
// with value equality, so they can be used directly as map keys. The
// zero Stroke means "no binding".
type Stroke struct {
	Code  Code
	Char  rune // character identity, set only for PhaseTyped
	Mods  Modifier
	Phase Phase
}

// New returns a pressed-phase stroke for the given key and modifiers.
func New(code Code, mods Modifier) Stroke {
	return Stroke{Code: code, Mods: mods, Phase: PhasePressed}
}

// NewTyped returns a typed-phase stroke for a character.
func NewTyped(ch rune, mods Modifier) Stroke {
	return Stroke{Char: ch, Mods: mods, Phase: PhaseTyped}
}

// IsZero reports whether the stroke is the absent value.
func (s Stroke) IsZero() bool {
	return s == Stroke{}
}

// OnRelease reports whether the stroke triggers when the key is released.
func (s Stroke) OnRelease() bool {
	return s.Phase == PhaseReleased
}

// Normalize returns a stroke whose legacy modifier bits have been
// rewritten to their modern equivalents and whose generic Control
// modifier has been mapped to the platform command modifier. Phase and
// key identity are preserved.
func Normalize(s Stroke) Stroke {
	if s.IsZero() {
		return s
	}
	mods := s.Mods.Normalize()
	if s.Phase == PhaseTyped {
		return Stroke{Char: s.Char, Mods: mods, Phase: PhaseTyped}
	}
	return Stroke{Code: s.Code, Mods: mods, Phase: s.Phase}
}

// String renders the stroke in its canonical display form, for example
// "Ctrl-Alt-Z" or "Meta-Ctrl-Alt-Shift-F4". Present modifiers always
// appear in that fixed order regardless of how the stroke was built.
// Typed-phase strokes render as the bare character. Parse accepts
// everything String produces.
func (s Stroke) String() string {
	if s.IsZero() {
		return ""
	}
	if s.Phase == PhaseTyped {
		return string(s.Char)
	}

	var b strings.Builder
	if s.Mods.HasMeta() {
		b.WriteString("Meta-")
	}
	if s.Mods.HasCtrl() {
		b.WriteString("Ctrl-")
	}
	if s.Mods.HasAlt() {
		b.WriteString("Alt-")
	}
	if s.Mods.HasShift() {
		b.WriteString("Shift-")
	}
	b.WriteString(s.Code.Name())
	return b.String()
}
