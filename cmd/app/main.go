package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, err := configs.SlogLevel()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, logger)

	if configs.SeedDemoData {
		if err = app.SeedDemoData(ctx); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs); err != nil {
		logger.Error("Web server failed", "error", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(configs.EchoLogLevel())

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Web server listening", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
