package ui

import (
	"log"

	"github.com/getlantern/systray"
)

// SystrayManager owns the tray icon and menu for the application.
type SystrayManager struct {
	appName      string
	version      string
	embeddedIcon []byte

	onImport       func()
	onExport       func()
	onViewChanges  func()
	onCopySummary  func()
	onReloadConfig func()
	onQuit         func()

	miViewChanges *systray.MenuItem
}

// NewSystrayManager creates a tray manager wired to the application's
// callbacks.
func NewSystrayManager(
	appName, version string,
	embeddedIcon []byte,
	onImport func(),
	onExport func(),
	onViewChanges func(),
	onCopySummary func(),
	onReloadConfig func(),
	onQuit func(),
) *SystrayManager {
	return &SystrayManager{
		appName:        appName,
		version:        version,
		embeddedIcon:   embeddedIcon,
		onImport:       onImport,
		onExport:       onExport,
		onViewChanges:  onViewChanges,
		onCopySummary:  onCopySummary,
		onReloadConfig: onReloadConfig,
		onQuit:         onQuit,
	}
}

// Run starts the tray loop. It blocks until Quit is selected.
func (s *SystrayManager) Run() {
	systray.Run(s.onReady, s.onExit)
}

// UpdateViewChangesStatus enables or disables the "View Last Import
// Changes" item depending on whether a change report exists.
func (s *SystrayManager) UpdateViewChangesStatus(available bool) {
	if s.miViewChanges == nil {
		return
	}
	if available {
		s.miViewChanges.Enable()
	} else {
		s.miViewChanges.Disable()
	}
}

func (s *SystrayManager) onReady() {
	if len(s.embeddedIcon) > 0 {
		systray.SetIcon(s.embeddedIcon)
	}
	systray.SetTitle(s.appName)
	systray.SetTooltip(s.appName + " " + s.version)

	miImport := systray.AddMenuItem("Import Key Bindings...", "Load key bindings from a .kbxml file")
	miExport := systray.AddMenuItem("Export Key Bindings...", "Save current key bindings to a .kbxml file")
	systray.AddSeparator()
	s.miViewChanges = systray.AddMenuItem("View Last Import Changes", "Show what the last import changed")
	s.miViewChanges.Disable()
	miCopySummary := systray.AddMenuItem("Copy Binding Summary", "Copy the current bindings to the clipboard")
	systray.AddSeparator()
	miReload := systray.AddMenuItem("Reload Config", "Re-read the configuration file")
	miQuit := systray.AddMenuItem("Quit", "Exit "+s.appName)

	go func() {
		for {
			select {
			case <-miImport.ClickedCh:
				s.invoke("import", s.onImport)
			case <-miExport.ClickedCh:
				s.invoke("export", s.onExport)
			case <-s.miViewChanges.ClickedCh:
				s.invoke("view changes", s.onViewChanges)
			case <-miCopySummary.ClickedCh:
				s.invoke("copy summary", s.onCopySummary)
			case <-miReload.ClickedCh:
				s.invoke("reload config", s.onReloadConfig)
			case <-miQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func (s *SystrayManager) invoke(name string, fn func()) {
	if fn == nil {
		log.Printf("No handler wired for tray action %q", name)
		return
	}
	fn()
}

func (s *SystrayManager) onExit() {
	if s.onQuit != nil {
		s.onQuit()
	}
}
