package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/config"
	"github.com/mamadbah2/mangsho/internal/repository/mongodb"
	"github.com/mamadbah2/mangsho/internal/repository/sheets"
	"github.com/mamadbah2/mangsho/internal/scheduler"
	"github.com/mamadbah2/mangsho/internal/server/handlers"
	"github.com/mamadbah2/mangsho/internal/server/router"
	dashboardsvc "github.com/mamadbah2/mangsho/internal/service/dashboard"
	recordsvc "github.com/mamadbah2/mangsho/internal/service/records"
	reportingsvc "github.com/mamadbah2/mangsho/internal/service/reporting"
	"github.com/mamadbah2/mangsho/pkg/clients/webhook"
	"github.com/mamadbah2/mangsho/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	recordsSvc := recordsvc.NewService(mongoRepo, baseLogger.Named("svc.records"))
	dashboardSvc := dashboardsvc.NewService(mongoRepo, cfg.Dashboard.LowStockThresholdKg, baseLogger.Named("svc.dashboard"))

	recordsHandler := handlers.NewRecordsHandler(recordsSvc, baseLogger.Named("handlers.records"))
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc, baseLogger.Named("handlers.dashboard"))
	engine := router.New(recordsHandler, dashboardHandler, baseLogger.Named("router"))

	if cfg.Reporting.Enabled {
		var notifier webhook.Notifier
		if cfg.AlertEnabled() {
			notifier = webhook.NewClient(cfg.Alert)
			baseLogger.Info("alert webhook enabled")
		}

		var exporter sheets.Repository
		if cfg.SheetsEnabled() {
			exporter, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
			if err != nil {
				baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
			}
			baseLogger.Info("sheet export enabled")
		}

		reportingSvc := reportingsvc.NewService(dashboardSvc, notifier, exporter, cfg.Sheets.ReportRange, baseLogger.Named("svc.reporting"))
		sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
