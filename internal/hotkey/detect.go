package hotkey

import (
	"log"
	"os"
	"runtime"
)

// DisplayServer identifies the windowing system hosting the process,
// which determines whether OS-global hotkeys can be registered at all.
type DisplayServer int

const (
	DisplayServerUnknown DisplayServer = iota
	DisplayServerWindows
	DisplayServerX11
	DisplayServerWayland
)

func (ds DisplayServer) String() string {
	switch ds {
	case DisplayServerWindows:
		return "Windows"
	case DisplayServerX11:
		return "X11"
	case DisplayServerWayland:
		return "Wayland"
	default:
		return "Unknown"
	}
}

// DetectDisplayServer determines which display server is in use. Safe
// to call on any platform.
func DetectDisplayServer() DisplayServer {
	if runtime.GOOS == "windows" {
		return DisplayServerWindows
	}

	// Check Wayland first; a Wayland session often sets DISPLAY too
	// (XWayland).
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}

	// macOS has its own windowing system; the hotkey library supports
	// it the same way it supports X11.
	if runtime.GOOS == "darwin" {
		return DisplayServerX11
	}

	return DisplayServerUnknown
}

// GlobalHotkeysSupported reports whether the current session can
// register OS-global hotkeys, logging the reason when it cannot, so
// registration failures are explained to the user rather than silent.
func GlobalHotkeysSupported() bool {
	switch ds := DetectDisplayServer(); ds {
	case DisplayServerWindows, DisplayServerX11:
		return true
	case DisplayServerWayland:
		log.Println("Wayland detected: global hotkeys are unavailable; widget-local bindings still work")
		return false
	default:
		log.Printf("Unknown display server (%s): global hotkeys are unavailable", ds)
		return false
	}
}
