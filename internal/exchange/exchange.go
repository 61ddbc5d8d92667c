// Package exchange imports and exports binding-options documents as
// .kbxml files chosen by the user. The file chooser, the error dialog
// surface and the last-directory preference are injected so the flow
// stays testable and free of hidden I/O.
package exchange

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/keybindery/keybindery/internal/options"
)

// FileExtension is enforced on exported files and used as the chooser
// filter on both import and export.
const FileExtension = ".kbxml"

// ErrCanceled is returned by FileChooser implementations when the user
// dismisses the dialog without choosing a file.
var ErrCanceled = errors.New("file selection canceled")

// FileChooser prompts the user for a file. Both calls block until the
// user selects a file or cancels, and return ErrCanceled on cancel.
type FileChooser interface {
	// OpenFile prompts for an existing file, starting in startDir.
	OpenFile(startDir string) (string, error)
	// SaveFile prompts for a destination file, starting in startDir.
	SaveFile(startDir string) (string, error)
}

// Alerter surfaces user-facing error dialogs.
type Alerter interface {
	Error(title, message string)
}

// DirStore persists the last directory the user exported to or
// imported from. Last write wins; there is only ever one UI actor.
type DirStore interface {
	LastExportDir() string
	SetLastExportDir(dir string)
}

// startingDir resolves the chooser's initial directory: the last-used
// directory when one is recorded, the user's home directory otherwise.
func startingDir(dirs DirStore) string {
	if dir := dirs.LastExportDir(); dir != "" {
		return dir
	}
	return xdg.Home
}

// Export prompts for a destination file and writes the document to it
// as XML, forcing the .kbxml extension when absent. Write failures are
// shown to the user and leave any partially written file as-is; close
// failures are ignored. A canceled dialog is not an error.
func Export(o *options.Options, chooser FileChooser, alerter Alerter, dirs DirStore) error {
	for {
		path, err := chooser.SaveFile(startingDir(dirs))
		if errors.Is(err, ErrCanceled) {
			return nil
		}
		if err != nil {
			alerter.Error("Error Saving Key Bindings", "Unable to select a destination file.")
			return err
		}

		if !strings.HasSuffix(path, FileExtension) {
			path += FileExtension
		}
		dirs.SetLastExportDir(filepath.Dir(path))

		f, err := os.Create(path)
		if err != nil {
			if os.IsNotExist(err) {
				// destination directory vanished under the chooser;
				// tell the user and prompt again
				alerter.Error("File Not Found", "Cannot create file "+path)
				continue
			}
			alerter.Error("Error Saving Key Bindings", "Unable to save key bindings as XML data.")
			return err
		}

		werr := o.WriteXML(f)
		if cerr := f.Close(); cerr != nil {
			// we tried
			log.Printf("Ignoring close failure for %s: %v", path, cerr)
		}
		if werr != nil {
			alerter.Error("Error Saving Key Bindings", "Unable to save key bindings as XML data.")
			return werr
		}

		log.Printf("Exported key bindings to %s", path)
		return nil
	}
}

// Import prompts for a source file and parses it into a binding-options
// document. A missing file re-prompts until the user cancels; a read or
// parse failure is shown to the user and yields a nil document, which
// callers must treat as "no configuration loaded". A canceled dialog
// yields nil, nil.
func Import(chooser FileChooser, alerter Alerter, dirs DirStore) (*options.Options, error) {
	for {
		path, err := chooser.OpenFile(startingDir(dirs))
		if errors.Is(err, ErrCanceled) {
			return nil, nil
		}
		if err != nil {
			alerter.Error("Error Loading Key Bindings", "Unable to select a file.")
			return nil, err
		}

		dirs.SetLastExportDir(filepath.Dir(path))

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				// show the error and prompt again
				alerter.Error("File Not Found", "Cannot find file "+path)
				continue
			}
			alerter.Error("Error Loading Key Bindings", "Unable to read key bindings file.")
			return nil, err
		}

		o, perr := options.ReadXML(f)
		if cerr := f.Close(); cerr != nil {
			// we tried
			log.Printf("Ignoring close failure for %s: %v", path, cerr)
		}
		if perr != nil {
			alerter.Error("Error Loading Key Bindings", "Unable to build XML data.")
			return nil, perr
		}

		log.Printf("Imported key bindings from %s", path)
		return o, nil
	}
}
