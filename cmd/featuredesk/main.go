package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/shhac/featuredesk/internal/app"
	"github.com/shhac/featuredesk/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting featuredesk API tester")

	// Load configuration from .env and the environment
	app.LoadDotEnv(tempLogger)
	cfg := app.ConfigFromEnv()

	fyneApp := fyneapp.NewWithID("com.featuredesk.tester")
	ui.LoadThemePreference(fyneApp)

	desk, err := app.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow, err := ui.NewMainWindow(desk.FyneApp(), desk)
	if err != nil {
		return fmt.Errorf("failed to build main window: %w", err)
	}

	// Run the application (blocking)
	desk.Run(mainWindow.Window())

	desk.Logger().Info("application shutdown complete")
	return nil
}
