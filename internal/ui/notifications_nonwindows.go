//go:build !windows

package ui

import "github.com/gen2brain/beeep"

func (n *NotificationManager) platformNotify(title, message string) error {
	// beeep handles the icon lookup itself; no path needed here.
	return beeep.Notify(title, message, "")
}
