package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/featuredesk/internal/apiclient"
	"github.com/shhac/featuredesk/internal/domain"
	"github.com/shhac/featuredesk/internal/health"
	"github.com/shhac/featuredesk/internal/logging"
	"github.com/shhac/featuredesk/internal/model"
	"github.com/shhac/featuredesk/internal/notify"
	"github.com/shhac/featuredesk/internal/schedule"
	"github.com/shhac/featuredesk/internal/tester"
)

// Preference keys shared with the preferences dialog.
const (
	PrefRequestTimeout = "requestTimeout"
	PrefTheme          = "appTheme"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger

	state         *model.ApplicationState
	scheduler     *schedule.Scheduler
	client        *apiclient.Client
	poller        *health.Poller
	notifications *notify.Center
	controller    *tester.Controller
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	var logger *slog.Logger
	if cfg.LogToStderr {
		logger = logging.NewConsoleLogger(os.Stderr, cfg.Debug)
	} else {
		var err error
		logger, err = logging.InitLogger("featuredesk", cfg.Debug)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	return NewWithLogger(fyneApp, cfg, logger), nil
}

// NewWithLogger wires the application around an existing logger.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) *App {
	logger.Info("initializing featuredesk",
		slog.Bool("debug", cfg.Debug),
		slog.String("api", apiclient.DefaultBaseURL),
	)

	state := model.NewApplicationState()
	scheduler := schedule.New()

	client := apiclient.NewClient(apiclient.DefaultBaseURL, requestTimeout(fyneApp), logger)
	notifications := notify.NewCenter(scheduler, notify.DefaultTimings(), logger)
	poller := health.NewPoller(client, scheduler, health.DefaultInterval, logger)

	// Wire poll results to UI state
	poller.SetStatusCallback(func(status domain.ServerStatus) {
		state.Server.Apply(status)
	})

	controller := tester.NewController(state, client, notifications, logger)

	logger.Info("application initialized successfully")

	return &App{
		fyneApp:       fyneApp,
		config:        cfg,
		logger:        logger,
		state:         state,
		scheduler:     scheduler,
		client:        client,
		poller:        poller,
		notifications: notifications,
		controller:    controller,
	}
}

// requestTimeout reads the saved request timeout preference.
func requestTimeout(a fyne.App) time.Duration {
	seconds := a.Preferences().FloatWithFallback(PrefRequestTimeout, apiclient.DefaultTimeout.Seconds())
	if seconds <= 0 {
		return apiclient.DefaultTimeout
	}
	return time.Duration(seconds * float64(time.Second))
}

// Start begins background work: the health poller checks immediately and
// then on every interval.
func (a *App) Start() {
	a.poller.Start()
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.Start()
	a.window.ShowAndRun()
	a.Shutdown()
}

// Shutdown cancels every scheduled task.
func (a *App) Shutdown() {
	a.poller.Stop()
	a.notifications.Close()
	a.scheduler.Stop()
	a.logger.Debug("background tasks stopped")
}

// ReloadPreferences applies saved preferences that affect running components.
func (a *App) ReloadPreferences() {
	timeout := requestTimeout(a.fyneApp)
	a.client.SetTimeout(timeout)
	a.logger.Debug("preferences applied", slog.Duration("request_timeout", timeout))
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}

// Controller returns the tester controller.
func (a *App) Controller() *tester.Controller {
	return a.controller
}

// Notifications returns the notification center.
func (a *App) Notifications() *notify.Center {
	return a.notifications
}

// Poller returns the health poller.
func (a *App) Poller() *health.Poller {
	return a.poller
}

// Client returns the feature API client.
func (a *App) Client() *apiclient.Client {
	return a.client
}
