package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/config"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/logging"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/web"
)

// main serves the web game until SIGINT or SIGTERM.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cfgPath := flag.String("config", "config.yml", "path to the yaml config file")
	flag.Parse()

	conf := config.MustLoad(*cfgPath)
	logger := logging.New(os.Stdout, conf.LogLevel, conf.LogFormat)

	if err := run(logger, conf); err != nil {
		panic(fmt.Errorf("server run failed: %w", err))
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := app.NewService(logger)
	srv := &http.Server{
		Addr:         conf.HTTP.Addr(),
		Handler:      web.NewServer(svc, logger),
		ReadTimeout:  conf.HTTP.ReadTimeout,
		WriteTimeout: conf.HTTP.WriteTimeout,
		IdleTimeout:  conf.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped", "sessions", svc.Len())
	return nil
}
