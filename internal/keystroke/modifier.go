package keystroke

// Modifier is a bitset of keyboard modifier keys. Two encodings exist
// for each modifier: the legacy bits used by older binding files and
// tools, and the modern "down" bits. All input paths accept both;
// Normalize rewrites legacy bits to their modern equivalents.
type Modifier int

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0

	// Legacy bit positions. Accepted on input only.
	ModShiftLegacy Modifier = 1 << 0
	ModCtrlLegacy  Modifier = 1 << 1
	ModMetaLegacy  Modifier = 1 << 2
	ModAltLegacy   Modifier = 1 << 3

	// Modern bit positions.
	ModShift Modifier = 1 << 6
	ModCtrl  Modifier = 1 << 7
	ModMeta  Modifier = 1 << 8
	ModAlt   Modifier = 1 << 9
)

// HasShift reports whether Shift is set in either encoding.
func (m Modifier) HasShift() bool {
	return m&ModShift != 0 || m&ModShiftLegacy != 0
}

// HasCtrl reports whether Control is set in either encoding.
func (m Modifier) HasCtrl() bool {
	return m&ModCtrl != 0 || m&ModCtrlLegacy != 0
}

// HasMeta reports whether Meta is set in either encoding.
func (m Modifier) HasMeta() bool {
	return m&ModMeta != 0 || m&ModMetaLegacy != 0
}

// HasAlt reports whether Alt is set in either encoding.
func (m Modifier) HasAlt() bool {
	return m&ModAlt != 0 || m&ModAltLegacy != 0
}

// Normalize rewrites legacy modifier bits to their modern equivalents
// and maps the generic Control modifier to the platform's primary
// command modifier (Meta on macOS, Control elsewhere). The result is
// stable: normalizing twice gives the same value as normalizing once.
func (m Modifier) Normalize() Modifier {
	if m&ModCtrlLegacy != 0 {
		m ^= ModCtrlLegacy
		m |= ModCtrl
	}
	if m&ModShiftLegacy != 0 {
		m ^= ModShiftLegacy
		m |= ModShift
	}
	if m&ModAltLegacy != 0 {
		m ^= ModAltLegacy
		m |= ModAlt
	}
	if m&ModMetaLegacy != 0 {
		m ^= ModMetaLegacy
		m |= ModMeta
	}

	// The generic Control modifier becomes the platform command key.
	if m&ModCtrl != 0 {
		m ^= ModCtrl
		m |= ModCommand
	}
	return m
}
