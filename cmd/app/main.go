package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/HealthQuest_Go/internal/config"
	"github.com/osse101/HealthQuest_Go/internal/engine"
	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/health"
	"github.com/osse101/HealthQuest_Go/internal/notify"
	"github.com/osse101/HealthQuest_Go/internal/report"
	"github.com/osse101/HealthQuest_Go/internal/scheduler"
	"github.com/osse101/HealthQuest_Go/internal/server"
	"github.com/osse101/HealthQuest_Go/internal/storage"
	"github.com/osse101/HealthQuest_Go/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", w)
	}

	store, err := storage.New(cfg.StorageDir, storage.WithHistoryCache(cfg.HistoryCacheSize, cfg.HistoryCacheTTL))
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	provider, err := health.NewProvider(cfg.HealthProvider, cfg.HealthFile)
	if err != nil {
		log.Fatalf("Failed to create health provider: %v", err)
	}

	svc := game.NewService(store, engine.New(), provider, report.NewFileRenderer(store))

	ctx := context.Background()
	if _, err := svc.Load(ctx); err != nil {
		log.Fatalf("Failed to load game state: %v", err)
	}

	reports := notify.NewScheduler(svc.HandleReport, cfg.Location)
	reports.ScheduleDailyReports()

	closer := worker.NewDailyCloseWorker(svc, cfg.DailyCloseHour, cfg.Location)
	closer.Start()

	maintenance := worker.NewPool(1, 1)
	maintenance.Start()
	recurring := scheduler.New(maintenance)
	if cfg.RotationInterval > 0 {
		if err := recurring.Schedule("storage_rotation", cfg.RotationInterval, worker.RotationJob(svc)); err != nil {
			log.Fatalf("Failed to schedule storage rotation: %v", err)
		}
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, svc, store)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	slog.Info("HealthQuest running",
		"storage_dir", store.Dir(),
		"health_provider", cfg.HealthProvider,
		"next_close", closer.NextClose())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := closer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Daily close worker shutdown failed", "error", err)
	}
	if err := reports.Shutdown(shutdownCtx); err != nil {
		slog.Error("Report scheduler shutdown failed", "error", err)
	}
	recurring.Stop()
	maintenance.Stop()
	slog.Info("Shutdown complete")
}
