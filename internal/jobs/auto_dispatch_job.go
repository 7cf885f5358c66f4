package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoDispatchJob manages the scheduled matching of confirmed orders with
// available drivers. Runs every second so claimed orders start moving
// without waiting for a staff member.
type AutoDispatchJob struct {
	handler commands.AutoAssignDriverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoDispatchJob creates a new job for background driver assignment.
// Uses AutoAssignDriverCommandHandler to process one match per tick.
func NewAutoDispatchJob(handler commands.AutoAssignDriverCommandHandler, logger *slog.Logger) *AutoDispatchJob {
	return &AutoDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_dispatch_job"),
	}
}

// Start begins the auto-dispatch job to run every second.
func (j *AutoDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignDriverCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios.
			// A conflict means a staff member dispatched the same order or
			// driver first; the next tick simply picks another match.
			if !errors.Is(err, commands.ErrNoOrderFound) &&
				!errors.Is(err, commands.ErrNoAvailableDriversFound) {
				j.logger.ErrorContext(ctx, "Auto dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto dispatch job started (running every second)")
	return nil
}

// Stop stops the auto-dispatch job.
func (j *AutoDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto dispatch job stopped")
}
