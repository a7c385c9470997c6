package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/rabirubia/marine-card/internal/forecast"
)

// Runner executes one card generation run.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler triggers the daily card generation in serve mode. The job time
// is interpreted in AST, matching the forecast's audience.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	at        string
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a Scheduler that runs the generator daily at the given
// "HH:MM" local time.
func New(runner Runner, at string, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(forecast.AST),
		runner:    runner,
		at:        at,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start schedules the daily job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(1).Day().At(s.at).Do(func() {
		s.logger.Info("scheduler: running card generation")

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.runner.Run(ctx); err != nil {
			// Fetch degradation is handled inside the run; an error here
			// means no artifact was produced.
			s.logger.Error("scheduler: card generation failed", "error", err)
			return
		}
		s.logger.Info("scheduler: card generation completed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
