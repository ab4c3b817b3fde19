package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/jobs"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/config"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
)

// Scheduler управляет расписанием фоновых задач
type Scheduler struct {
	cron   *cron.Cron
	jobs   *jobs.JobRunner
	logger logger.Logger
}

// NewScheduler создает планировщик и регистрирует задачи
func NewScheduler(cfg *config.SchedulerConfig, jobRunner *jobs.JobRunner, log logger.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		jobs:   jobRunner,
		logger: log,
	}

	if _, err := c.AddFunc(cfg.OverdueSweep, jobRunner.SweepOverdueRentals); err != nil {
		log.Error("Failed to register SweepOverdueRentals job", map[string]interface{}{
			"error":    err.Error(),
			"schedule": cfg.OverdueSweep,
		})
	}

	return s
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started")
}

// Stop останавливает планировщик, дожидаясь выполняющихся задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}
