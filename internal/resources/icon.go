// Package resources carries the application's embedded assets.
package resources

import (
	_ "embed"
	"errors"
)

// ErrIconNotFound is returned when the binary was built without an icon.
var ErrIconNotFound = errors.New("embedded icon not found")

//go:embed icon.ico
var iconData []byte

// Icon returns the bytes of the embedded tray icon.
func Icon() ([]byte, error) {
	if len(iconData) == 0 {
		return nil, ErrIconNotFound
	}
	return iconData, nil
}
