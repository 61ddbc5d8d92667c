package ui

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/keybindery/keybindery/internal/exchange"
)

// fileFilterName labels the .kbxml filter in the chooser.
const fileFilterName = "Key Bindings XML Files"

// Dialogs implements the exchange collaborators on top of the native
// dialog toolkit.
type Dialogs struct {
	appName string
}

// NewDialogs returns a dialog surface titled with the application name.
func NewDialogs(appName string) *Dialogs {
	return &Dialogs{appName: appName}
}

func kbxmlFilter() zenity.FileFilters {
	return zenity.FileFilters{
		{Name: fileFilterName, Patterns: []string{"*" + exchange.FileExtension}, CaseFold: true},
	}
}

// OpenFile prompts for an existing key bindings file.
func (d *Dialogs) OpenFile(startDir string) (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Please Select A File"),
		zenity.Filename(startDir+string(filepath.Separator)),
		kbxmlFilter(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", exchange.ErrCanceled
	}
	return path, err
}

// SaveFile prompts for a destination key bindings file.
func (d *Dialogs) SaveFile(startDir string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Please Select A File"),
		zenity.Filename(startDir+string(filepath.Separator)),
		zenity.ConfirmOverwrite(),
		kbxmlFilter(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", exchange.ErrCanceled
	}
	return path, err
}

// Error shows a modal error dialog. Dialog failures are logged, never
// propagated: the message is already in the log, which is the best we
// can do without a display.
func (d *Dialogs) Error(title, message string) {
	log.Printf("%s: %s", title, message)
	if err := zenity.Error(message, zenity.Title(d.appName+" - "+title), zenity.ErrorIcon); err != nil {
		log.Printf("Error showing error dialog: %v", err)
	}
}

// Info shows a modal information dialog.
func (d *Dialogs) Info(title, message string) {
	if err := zenity.Info(message, zenity.Title(d.appName+" - "+title), zenity.InfoIcon); err != nil {
		log.Printf("Error showing info dialog: %v", err)
	}
}
