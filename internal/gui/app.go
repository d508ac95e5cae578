//go:build !nogui

package gui

import (
	"context"
	"fmt"

	"vectoriser/internal/config"
	vdialog "vectoriser/internal/dialog"
	"vectoriser/internal/log"
	"vectoriser/internal/shell"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// contentSpacing is the gap between the button and the status label.
const contentSpacing = 20

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	configPath string
	shell      *shell.Shell
	picker     shell.Picker

	selectButton *widget.Button
	statusLabel  *widget.Label
}

// Option configures an App.
type Option func(*App)

// WithFyneApp runs the window on an existing Fyne app, e.g. test.NewTempApp.
func WithFyneApp(fa fyne.App) Option {
	return func(a *App) { a.fyneApp = fa }
}

// WithPicker replaces the Fyne file dialog.
func WithPicker(p shell.Picker) Option {
	return func(a *App) { a.picker = p }
}

// WithConfigPath enables live reload of the dialog settings from path.
func WithConfigPath(path string) Option {
	return func(a *App) { a.configPath = path }
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config, opts ...Option) *App {
	a := &App{cfg: cfg}
	for _, o := range opts {
		o(a)
	}

	if a.fyneApp == nil {
		// Create app with a unique ID for preferences storage
		a.fyneApp = app.NewWithID(cfg.Window.AppID)
	}
	a.fyneApp.SetIcon(theme.FileImageIcon())

	a.mainWindow = a.fyneApp.NewWindow(cfg.Window.Title)
	a.mainWindow.SetMaster()
	a.mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	if a.picker == nil {
		a.picker = NewFilePicker(a.mainWindow)
	}
	a.shell = shell.New(a.picker, vdialog.FromConfig(cfg),
		shell.WithErrorHandler(func(err error) { a.ShowError("Could not open the file dialog", err) }),
	)
	a.shell.OnChange(a.render)

	a.mainWindow.SetContent(a.buildContent())

	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Shell returns the state owner behind the window.
func (a *App) Shell() *shell.Shell {
	return a.shell
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.configPath != "" {
		a.watchConfig(ctx)
	}

	a.mainWindow.CenterOnScreen()
	a.mainWindow.Show()
	a.fyneApp.Run()

	log.Info("Window closed")
	return nil
}

// buildContent lays out the select button above the status label,
// centered in the window.
func (a *App) buildContent() fyne.CanvasObject {
	a.selectButton = widget.NewButton("Select Image", func() {
		a.shell.Dispatch(shell.RequestFilePick{})
	})

	a.statusLabel = widget.NewLabel(a.shell.State().StatusText())
	a.statusLabel.Alignment = fyne.TextAlignCenter

	column := container.New(layout.NewCustomPaddedVBoxLayout(contentSpacing),
		a.selectButton,
		a.statusLabel,
	)
	return container.NewCenter(column)
}

func (a *App) render(st shell.State) {
	a.statusLabel.SetText(st.StatusText())
}

// ApplyConfig takes a reloaded configuration. Dialog settings apply to
// the next dialog; a failed reload keeps the current settings.
func (a *App) ApplyConfig(cfg *config.Config, err error) {
	if err != nil {
		log.LogWithError(err).Warn("Ignoring config reload")
		return
	}
	fyne.Do(func() {
		a.cfg = cfg
		a.shell.SetOptions(vdialog.FromConfig(cfg))
		a.mainWindow.SetTitle(cfg.Window.Title)
		log.Infof("Reloaded configuration from %s", a.configPath)
	})
}

func (a *App) watchConfig(ctx context.Context) {
	w, err := config.NewWatcher(a.configPath)
	if err != nil {
		log.LogWithError(err).Debug("Config reload disabled")
		return
	}
	go func() {
		if err := w.Run(ctx, a.ApplyConfig); err != nil {
			log.LogError(err, "Config watcher stopped")
		}
	}()
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.LogError(err, title)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.mainWindow)
}

// Start builds the window from cfg and runs it until closed.
func Start(cfg *config.Config, configPath string) error {
	ui, err := NewFactory(cfg, configPath).Create()
	if err != nil {
		return err
	}
	return ui.Run()
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
