package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	httphealth "3tcapital/bluegreen/internal/adapters/http/health"
	httpinfo "3tcapital/bluegreen/internal/adapters/http/info"
	httppage "3tcapital/bluegreen/internal/adapters/http/page"
	apphealth "3tcapital/bluegreen/internal/application/health"
	appinfo "3tcapital/bluegreen/internal/application/info"
	"3tcapital/bluegreen/internal/core/deployment"
	"3tcapital/bluegreen/internal/infrastructure/config"
	"3tcapital/bluegreen/internal/infrastructure/http/server"
	"3tcapital/bluegreen/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "service stopped: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Keep the monotonic reading so uptime ignores wall clock steps.
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	identity := deployment.Resolve(cfg.Deployment.Revision, cfg.Deployment.Stage)

	log := logger.New(cfg.App.Name, cfg.Log.Level, cfg.App.Environment).
		With("version", identity.AppVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthService := apphealth.NewService(identity, startedAt)
	infoService := appinfo.NewService(identity, appinfo.Metadata{
		Port:           cfg.HTTP.Port,
		RuntimeVersion: runtime.Version(),
	})

	srv, err := server.New(server.Options{
		Config:        cfg,
		Logger:        log,
		PageHandler:   httppage.NewHandler(identity, log).Index,
		HealthHandler: httphealth.NewHandler(healthService, log).Status,
		InfoHandler:   httpinfo.NewHandler(infoService, log).GetInfo,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	log.Info("Starting Blue-Green Demo App",
		"commit_id", identity.CommitID,
		"revision", identity.RevisionName,
		"deployment_stage", identity.Stage,
	)
	log.Info("Open your browser", "url", fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port))
	log.Info("Health check available", "url", fmt.Sprintf("http://localhost:%d/health", cfg.HTTP.Port))

	if err := srv.Run(ctx); err != nil {
		log.Error("Application error", "error", err)
		return fmt.Errorf("run server: %w", err)
	}

	log.Info("Application stopped")
	return nil
}
