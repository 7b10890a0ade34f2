package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/config"
	"github.com/mamadbah2/mangsho/internal/service/reporting"
)

// Scheduler manages the recurring daily-summary job.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured
// timezone. An unknown timezone falls back to the server's local time.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the daily summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.sendDailySummary)
	if err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendDailySummary() {
	s.logger.Info("generating daily summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.SendDailySummary(ctx, time.Now()); err != nil {
		s.logger.Error("daily summary run failed", zap.Error(err))
	}
}
