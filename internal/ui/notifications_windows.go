//go:build windows

package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-toast/toast"
)

func (n *NotificationManager) platformNotify(title, message string) error {
	iconPath := ""
	if len(n.embeddedIcon) > 0 {
		var err error
		iconPath, err = writeTempIcon(n.embeddedIcon)
		if err != nil {
			log.Printf("Error writing temporary icon: %v", err)
			iconPath = ""
		} else {
			// Toast reads the icon asynchronously; give it a moment
			// before cleaning up.
			cleanupPath := iconPath
			time.AfterFunc(10*time.Second, func() {
				if err := os.Remove(cleanupPath); err != nil && !os.IsNotExist(err) {
					log.Printf("Error removing temporary icon file %s: %v", cleanupPath, err)
				}
			})
		}
	}

	notification := toast.Notification{
		AppID:   n.appName,
		Title:   title,
		Message: message,
		Icon:    iconPath,
	}
	return notification.Push()
}

// writeTempIcon writes the embedded icon to a temporary file and
// returns its absolute path, for toast notifications that require an
// icon on disk.
func writeTempIcon(iconData []byte) (string, error) {
	if len(iconData) == 0 {
		return "", fmt.Errorf("cannot write empty icon data")
	}
	tmpFile, err := os.CreateTemp("", "keybindery-icon-*.ico")
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	if _, err := tmpFile.Write(iconData); err != nil {
		_ = os.Remove(tmpFile.Name())
		return "", err
	}

	absPath, err := filepath.Abs(tmpFile.Name())
	if err != nil {
		return tmpFile.Name(), nil
	}
	return absPath, nil
}
