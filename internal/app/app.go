package app

import (
	"fmt"
	"log"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/keybindery/keybindery/internal/action"
	"github.com/keybindery/keybindery/internal/config"
	"github.com/keybindery/keybindery/internal/diffutil"
	"github.com/keybindery/keybindery/internal/exchange"
	"github.com/keybindery/keybindery/internal/hotkey"
	"github.com/keybindery/keybindery/internal/keystroke"
	"github.com/keybindery/keybindery/internal/options"
	"github.com/keybindery/keybindery/internal/resources"
	"github.com/keybindery/keybindery/internal/ui"
)

const appName = "Keybindery"

// Application wires the binding document, the import/export dialogs,
// the tray menu and the global hotkey bridge together.
type Application struct {
	config  *config.Config
	version string

	mu          sync.Mutex
	actions     []*action.BasicAction
	lastChanges string

	dialogs        *ui.Dialogs
	notifier       *ui.NotificationManager
	systrayManager *ui.SystrayManager
	hotkeyManager  *hotkey.Manager
	iconData       []byte
}

// New creates a new application instance.
func New(cfg *config.Config, version string) *Application {
	app := &Application{
		config:  cfg,
		version: version,
	}

	var err error
	app.iconData, err = resources.Icon()
	if err != nil {
		log.Printf("Warning: Failed to load embedded icon: %v", err)
	}

	app.dialogs = ui.NewDialogs(appName)
	app.notifier = ui.NewNotificationManager(cfg.UseNotifications, appName, app.iconData)
	app.hotkeyManager = hotkey.NewManager()
	app.actions = app.builtinActions()

	app.systrayManager = ui.NewSystrayManager(
		appName,
		version,
		app.iconData,
		app.onImport,
		app.onExport,
		app.onViewChanges,
		app.onCopySummary,
		app.onReloadConfig,
		app.onQuit,
	)

	return app
}

// builtinActions are the application's own operations. They take part
// in the binding document like any host action would, so importing a
// document can rebind them and exporting records them.
func (a *Application) builtinActions() []*action.BasicAction {
	mk := func(name, binding string, do func()) *action.BasicAction {
		stroke := keystroke.MustParse(binding)
		return &action.BasicAction{
			ActionName:  name,
			ActionOwner: appName,
			Binding:     stroke,
			Default:     stroke,
			Do:          do,
		}
	}
	return []*action.BasicAction{
		mk("Import Key Bindings", "Ctrl-Alt-I", a.onImport),
		mk("Export Key Bindings", "Ctrl-Alt-E", a.onExport),
		mk("Copy Binding Summary", "Ctrl-Alt-C", a.onCopySummary),
	}
}

// Run starts the application. It blocks until Quit is selected.
func (a *Application) Run() {
	if err := a.hotkeyManager.RegisterAll(a.source()); err != nil {
		log.Printf("Warning: Failed to register some hotkeys: %v", err)
		a.notifier.ShowNotification("Hotkey Registration Issue",
			fmt.Sprintf("Some hotkeys could not be registered: %v", err))
	}
	a.systrayManager.Run()
}

// AddActions registers additional host actions with the application.
// Must be called before Run.
func (a *Application) AddActions(actions ...*action.BasicAction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, add := range actions {
		same := action.Matching(a.sourceLocked(), add.ActionOwner, add.ActionName)
		action.AssertSameDefaultBindings(add, same)
		a.actions = append(a.actions, add)
	}
}

func (a *Application) source() action.Source {
	a.mu.Lock()
	defer a.mu.Unlock()
	return action.List(a.sourceLocked())
}

func (a *Application) sourceLocked() []action.Action {
	out := make([]action.Action, len(a.actions))
	for i, act := range a.actions {
		out[i] = act
	}
	return out
}

// currentDocument snapshots the live bindings into a document.
func (a *Application) currentDocument() *options.Options {
	return options.FromActions(a.config.DocumentName, action.AllByFullName(a.source()))
}

// applyDocument assigns the document's strokes to the matching live
// actions. Actions the document does not mention keep their binding.
func (a *Application) applyDocument(doc *options.Options) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, act := range a.actions {
		if doc.Contains(act.FullName()) {
			act.Binding = doc.KeyStroke(act.FullName())
		}
	}
}

// onImport is called from the tray menu or the import hotkey.
func (a *Application) onImport() {
	imported, err := exchange.Import(a.dialogs, a.dialogs, a.config)
	if err != nil {
		log.Printf("Import failed: %v", err)
		return
	}
	if imported == nil {
		log.Println("Import canceled.")
		return
	}

	before := a.currentDocument().Summary()
	a.applyDocument(imported)
	after := a.currentDocument().Summary()

	report := diffutil.Report(before, after)
	a.mu.Lock()
	a.lastChanges = report
	a.mu.Unlock()
	a.systrayManager.UpdateViewChangesStatus(report != "")

	if err := a.hotkeyManager.RegisterAll(a.source()); err != nil {
		log.Printf("Warning: Failed to re-register hotkeys after import: %v", err)
	}

	if report == "" {
		a.notifier.ShowNotification("Key Bindings Imported",
			"The imported file matches the current bindings. Nothing changed.")
		return
	}
	a.notifier.ShowNotification("Key Bindings Imported",
		fmt.Sprintf("Applied %d binding(s) from the imported file.", imported.Len()))
}

// onExport is called from the tray menu or the export hotkey.
func (a *Application) onExport() {
	if err := exchange.Export(a.currentDocument(), a.dialogs, a.dialogs, a.config); err != nil {
		log.Printf("Export failed: %v", err)
	}
}

// onViewChanges shows the change report from the last import.
func (a *Application) onViewChanges() {
	a.mu.Lock()
	report := a.lastChanges
	a.mu.Unlock()
	if report == "" {
		log.Println("View Last Import Changes clicked, but no changes recorded.")
		a.notifier.ShowNotification("View Changes", "No changes recorded from the last import.")
		a.systrayManager.UpdateViewChangesStatus(false)
		return
	}
	a.dialogs.Info("Last Import Changes", report)
}

// onCopySummary places a plain-text listing of the current bindings on
// the clipboard.
func (a *Application) onCopySummary() {
	summary := a.currentDocument().Summary()
	if err := clipboard.WriteAll(summary); err != nil {
		log.Printf("Failed to copy binding summary: %v", err)
		a.dialogs.Error("Clipboard Error", fmt.Sprintf("Unable to copy the binding summary: %v", err))
		return
	}
	a.notifier.ShowNotification("Summary Copied", "The binding summary was copied to the clipboard.")
}

// onReloadConfig re-reads the config file and swaps the contents in
// place so the shared pointer stays valid.
func (a *Application) onReloadConfig() {
	reloaded, err := config.Load(a.config.Path())
	if err != nil {
		log.Printf("Failed to reload config: %v", err)
		a.dialogs.Error("Config Error", fmt.Sprintf("Unable to reload the configuration: %v", err))
		return
	}
	*a.config = *reloaded
	a.notifier = ui.NewNotificationManager(a.config.UseNotifications, appName, a.iconData)
	log.Println("Configuration reloaded.")
	a.notifier.ShowNotification("Config Reloaded", "Configuration has been reloaded from disk.")
}

// onQuit is called when the tray menu's Quit item is selected.
func (a *Application) onQuit() {
	a.hotkeyManager.UnregisterAll()
	log.Println("Exiting application.")
}
