package keystroke

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog redirects the standard logger for the duration of a test
// and returns the accumulated output.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestParse_ModifierOrderAndCaseDoNotMatter(t *testing.T) {
	inputs := []string{
		"Ctrl-Alt-Z",
		"ctrl-alt-z",
		"alt ctrl z",
		"Z-Alt-Ctrl",
		"ALT-CTRL-Z",
	}

	want, err := Parse(inputs[0])
	require.NoError(t, err)
	for _, in := range inputs[1:] {
		got, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParse_SingleKey(t *testing.T) {
	s, err := Parse("F5")
	require.NoError(t, err)
	assert.Equal(t, CodeF5, s.Code)
	assert.Equal(t, Modifier(0), s.Mods)
	assert.Equal(t, PhasePressed, s.Phase)
}

func TestParse_ControlSpelling(t *testing.T) {
	a, err := Parse("Ctrl-S")
	require.NoError(t, err)
	b, err := Parse("control S")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_PhaseMarkersAreConsumed(t *testing.T) {
	plain, err := Parse("Ctrl-X")
	require.NoError(t, err)

	for _, in := range []string{"ctrl pressed X", "ctrl typed X", "ctrl released X"} {
		got, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, plain, got, "input %q", in)
		assert.Equal(t, PhasePressed, got.Phase, "input %q", in)
	}
}

func TestParse_NoKeyToken(t *testing.T) {
	buf := captureLog(t)

	_, err := Parse("Ctrl-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoKey))
	assert.Contains(t, buf.String(), "invalid keystroke string")
}

func TestParse_MultipleKeyTokensUsesFirst(t *testing.T) {
	buf := captureLog(t)

	got, err := Parse("Ctrl-X-Y")
	require.NoError(t, err)
	assert.Equal(t, MustParse("Ctrl-X"), got)
	assert.Equal(t, 1, strings.Count(buf.String(), "invalid keystroke string"))
}

func TestParse_UnsupportedKey(t *testing.T) {
	captureLog(t)

	_, err := Parse("Ctrl-Bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedKey))
}

func TestParse_DuplicateTokensCollapse(t *testing.T) {
	got, err := Parse("Ctrl-Ctrl-Z")
	require.NoError(t, err)
	assert.Equal(t, MustParse("Ctrl-Z"), got)
}

func TestString_FixedModifierOrder(t *testing.T) {
	s := New(CodeF4, ModShift|ModAlt|ModCtrl|ModMeta)
	assert.Equal(t, "Meta-Ctrl-Alt-Shift-F4", s.String())
}

func TestString_ZeroStroke(t *testing.T) {
	assert.Equal(t, "", Stroke{}.String())
}

func TestString_TypedStroke(t *testing.T) {
	s := NewTyped('x', 0)
	assert.Equal(t, "x", s.String())
}

func TestString_RoundTripsThroughParse(t *testing.T) {
	cases := []string{
		"Z",
		"Ctrl-Z",
		"Meta-Ctrl-Alt-Shift-F4",
		"Alt-PAGE_UP",
		"Shift-SPACE",
		"Ctrl-ENTER",
	}
	for _, in := range cases {
		s, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		back, err := Parse(s.String())
		require.NoError(t, err, "rendered %q", s.String())
		assert.Equal(t, s, back, "input %q", in)
	}
}

func TestNormalize_LegacyBitsBecomeModern(t *testing.T) {
	s := New(Code('Z'), ModShiftLegacy|ModAltLegacy)
	n := Normalize(s)
	assert.True(t, n.Mods.HasShift())
	assert.True(t, n.Mods.HasAlt())
	assert.Zero(t, n.Mods&(ModShiftLegacy|ModAltLegacy))
}

func TestNormalize_CtrlMapsToCommandKey(t *testing.T) {
	s := New(Code('S'), ModCtrl)
	n := Normalize(s)
	assert.Equal(t, ModCommand, n.Mods)
}

func TestNormalize_Idempotent(t *testing.T) {
	s := New(Code('S'), ModCtrlLegacy|ModShift)
	once := Normalize(s)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalize_PreservesKeyAndPhase(t *testing.T) {
	s := Stroke{Code: CodeF1, Mods: ModCtrl, Phase: PhaseReleased}
	n := Normalize(s)
	assert.Equal(t, CodeF1, n.Code)
	assert.Equal(t, PhaseReleased, n.Phase)

	typed := NewTyped('a', ModAltLegacy)
	nt := Normalize(typed)
	assert.Equal(t, 'a', nt.Char)
	assert.Equal(t, PhaseTyped, nt.Phase)
	assert.True(t, nt.Mods.HasAlt())
}

func TestNormalize_ZeroStaysZero(t *testing.T) {
	assert.True(t, Normalize(Stroke{}).IsZero())
}

func TestCodeFromName_Aliases(t *testing.T) {
	cases := map[string]Code{
		"ESC":       CodeEscape,
		"ESCAPE":    CodeEscape,
		"RETURN":    CodeEnter,
		"ENTER":     CodeEnter,
		"PGUP":      CodePageUp,
		"PAGE_UP":   CodePageUp,
		"PAGEDOWN":  CodePageDown,
		"PAGE_DOWN": CodePageDown,
		"DEL":       CodeDelete,
		"INS":       CodeInsert,
	}
	for name, want := range cases {
		got, ok := CodeFromName(name)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, want, got, "name %q", name)
	}
}

func TestCodeName_RoundTrip(t *testing.T) {
	for _, c := range []Code{Code('A'), Code('9'), CodeEnter, CodeSpace, CodeF12, CodePageUp} {
		got, ok := CodeFromName(c.Name())
		require.True(t, ok, "code %v", c)
		assert.Equal(t, c, got)
	}
}

func TestStroke_MapKey(t *testing.T) {
	m := map[Stroke]string{}
	m[MustParse("Ctrl-Z")] = "undo"
	assert.Equal(t, "undo", m[MustParse("ctrl z")])
}
