package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/miragrio/HMCTS/internal/application"
	"github.com/miragrio/HMCTS/internal/config"
	"github.com/miragrio/HMCTS/internal/httpapi"
	"github.com/miragrio/HMCTS/internal/infrastructure/db"
	"github.com/miragrio/HMCTS/internal/infrastructure/repositories"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dbPath := flag.String("db-path", "", "path to SQLite database (overrides config)")
	migrateOnly := flag.Bool("migrate", false, "run migrations and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dbPath != "" {
		cfg.Server.DBPath = *dbPath
	}
	if cfg.Server.DBPath == "" {
		cfg.Server.DBPath, err = db.DefaultDBPath(db.DefaultAppName)
		if err != nil {
			return err
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tasks-api",
	})

	adapter, err := db.NewSQLiteAdapter(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer adapter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, adapter.Raw()); err != nil {
		return err
	}
	if *migrateOnly {
		logger.Info("migrations completed", "db", cfg.Server.DBPath)
		return nil
	}

	taskRepo := repositories.NewTaskRepository(adapter)
	taskService := application.NewTaskService(taskRepo)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.NewServer(taskService, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "db", cfg.Server.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
