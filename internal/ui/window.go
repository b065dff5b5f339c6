package ui

import (
	"context"
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/shhac/featuredesk/internal/apiclient"
	apperrors "github.com/shhac/featuredesk/internal/errors"
	"github.com/shhac/featuredesk/internal/health"
	"github.com/shhac/featuredesk/internal/model"
	"github.com/shhac/featuredesk/internal/notify"
	"github.com/shhac/featuredesk/internal/tester"
	"github.com/shhac/featuredesk/internal/ui/components"
	"github.com/shhac/featuredesk/internal/ui/docs"
	uierrors "github.com/shhac/featuredesk/internal/ui/errors"
	"github.com/shhac/featuredesk/internal/ui/request"
	"github.com/shhac/featuredesk/internal/ui/response"
	"github.com/shhac/featuredesk/internal/ui/settings"
	"github.com/shhac/featuredesk/internal/ui/toast"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	FyneApp() fyne.App
	Controller() *tester.Controller
	Notifications() *notify.Center
	Poller() *health.Poller
	Client() *apiclient.Client
	ReloadPreferences()
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController

	// Panel widgets
	docsView      *docs.View
	exampleTabs   *components.Tabs
	requestPanel  *request.RequestPanel
	responsePanel *response.ResponsePanel
	statusBar     *uierrors.StatusBar
	toasts        *toast.Overlay
}

// NewMainWindow creates a new main window with the application layout.
// The window holds a navigation sidebar on the left and the scrollable
// documentation on the right; the last documentation section is the live
// tester. The server status bar runs along the bottom and toasts float
// over the top-right corner.
func NewMainWindow(fyneApp fyne.App, app AppController) (*MainWindow, error) {
	window := fyneApp.NewWindow("ML Feature Engineering API")

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	baseURL := app.Client().BaseURL()

	var err error
	mw.exampleTabs, err = docs.NewExampleTabs(baseURL, mw.copyToClipboard)
	if err != nil {
		return nil, err
	}
	mw.requestPanel = request.NewRequestPanel(mw.state.Request, baseURL, mw.logger)
	mw.requestPanel.SetEndpoint(mw.state.Endpoint())
	mw.responsePanel = response.NewResponsePanel(mw.state.Response)
	mw.statusBar = uierrors.NewStatusBar(mw.state.Server)
	mw.toasts = toast.NewOverlay()

	mw.docsView = docs.NewView([]docs.Page{
		{ID: docs.SectionOverview, Title: "Overview", Content: docs.NewOverview(baseURL)},
		{ID: docs.SectionEndpoints, Title: "Endpoints", Content: docs.NewEndpointList()},
		{ID: docs.SectionExamples, Title: "Examples", Content: mw.exampleTabs},
		{ID: docs.SectionTester, Title: "Tester", Content: container.NewGridWithColumns(2, mw.requestPanel, mw.responsePanel)},
	}, mw.state.ActiveSection, mw.logger)

	// Wire up callbacks
	mw.wireCallbacks()

	// Set up the window content
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	// Set default window size
	window.Resize(fyne.NewSize(1200, 800))

	return mw, nil
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	ctrl := w.app.Controller()

	w.requestPanel.SetOnSelect(ctrl.SelectEndpoint)
	w.requestPanel.SetOnSend(w.handleSendRequest)
	w.requestPanel.SetOnFormat(ctrl.FormatDraft)
	w.responsePanel.SetOnCopy(w.copyToClipboard)

	w.statusBar.SetOnRefresh(w.app.Poller().Refresh)
	w.toasts.Bind(w.app.Notifications())

	_ = w.state.ExampleTab.Set(w.exampleTabs.Active())
	w.exampleTabs.SetOnChange(func(name string) {
		_ = w.state.ExampleTab.Set(name)
	})
}

// handleSendRequest dispatches the current draft off the UI goroutine.
func (w *MainWindow) handleSendRequest() {
	go func() {
		err := w.app.Controller().Send(context.Background())
		if errors.Is(err, apperrors.ErrRequestInFlight) {
			w.logger.Debug("send ignored while a request is in flight")
		}
	}()
}

// copyToClipboard puts text on the clipboard and confirms with a toast.
func (w *MainWindow) copyToClipboard(text string) {
	w.window.Clipboard().SetContent(text)
	w.app.Controller().Copied()
}

// showPreferences opens the preferences dialog and applies saved changes.
func (w *MainWindow) showPreferences() {
	settings.ShowPreferencesDialog(w.app.FyneApp(), w.window, settings.PreferencesCallbacks{
		OnThemeChange: func(mode string) {
			ApplyTheme(w.app.FyneApp(), mode)
		},
		OnSaved: w.app.ReloadPreferences,
	})
}

// setupMainMenu installs the application menu.
func (w *MainWindow) setupMainMenu() {
	w.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Preferences...", w.showPreferences),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
			fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
		),
	))
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────┬──────────────────────────────┐
//	│ Contents │  Overview                    │
//	│          │  Endpoints                   │
//	│          │  Examples  [cURL|Py|JS]      │
//	│          │  Tester    request|response  │
//	├──────────┴──────────────────────────────┤
//	│  Status Bar                             │
//	└─────────────────────────────────────────┘
func (w *MainWindow) SetContent() {
	main := container.NewBorder(
		nil,         // top
		w.statusBar, // bottom (server status)
		nil,         // left
		nil,         // right
		w.docsView,  // center (navigation + sections)
	)

	w.window.SetContent(container.NewStack(main, w.toasts))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
