package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shhac/featuredesk/internal/app"
	"github.com/shhac/featuredesk/internal/docserver"
	"github.com/shhac/featuredesk/internal/logging"
)

func main() {
	bootstrap := logging.NewConsoleLogger(os.Stdout, false)
	app.LoadDotEnv(bootstrap)
	cfg := app.ConfigFromEnv()

	logger := logging.NewConsoleLogger(os.Stdout, cfg.Debug)
	srv := docserver.New(docserver.DefaultConfig(), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("documentation server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
		if err := srv.Shutdown(); err != nil {
			logger.Error("error shutting down server", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server gracefully stopped")
	}
}
