//go:build darwin

package keystroke

// ModCommand is the platform's primary command modifier. On macOS the
// Command key fills the role the Control key has elsewhere, so generic
// Control bindings normalize to Meta.
const ModCommand = ModMeta
