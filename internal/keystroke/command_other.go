//go:build !darwin

package keystroke

// ModCommand is the platform's primary command modifier.
const ModCommand = ModCtrl
