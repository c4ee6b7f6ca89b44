package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pizzapos/internal/core/application/usecases/commands"
)

// KitchenProgressJob advances the kitchen simulation on a fixed interval.
// Each run decays live order estimates, moves orders through stations and
// archives picked-up orders.
type KitchenProgressJob struct {
	handler     commands.AdvanceKitchenCommandHandler
	cron        *cron.Cron
	tickSeconds int
	logger      *slog.Logger
}

// NewKitchenProgressJob creates the simulator job. tickSeconds controls the
// cron interval between kitchen ticks.
func NewKitchenProgressJob(
	handler commands.AdvanceKitchenCommandHandler,
	tickSeconds int,
	logger *slog.Logger,
) *KitchenProgressJob {
	return &KitchenProgressJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		tickSeconds: tickSeconds,
		logger:      logger.With("component", "kitchen_progress_job"),
	}
}

// Start schedules the simulator tick.
func (j *KitchenProgressJob) Start() error {
	spec := fmt.Sprintf("*/%d * * * * *", j.tickSeconds)
	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceKitchenCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen progress job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Kitchen progress job started", "tick_seconds", j.tickSeconds)
	return nil
}

// Stop stops the simulator tick.
func (j *KitchenProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen progress job stopped")
}
