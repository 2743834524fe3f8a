package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob periodically sweeps for units past their delivery
// estimate and notifies the affected buyers. Runs hourly; the sweep is
// idempotent per run, so a missed or doubled tick is harmless.
type OverdueDeliveryJob struct {
	handler commands.NotifyOverdueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates the hourly overdue sweep job.
func NewOverdueDeliveryJob(handler commands.NotifyOverdueDeliveriesCommandHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start schedules the sweep at the top of every hour.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewNotifyOverdueDeliveriesCommand()

		dispatched, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
			return
		}
		if dispatched > 0 {
			j.logger.InfoContext(ctx, "Overdue delivery notifications dispatched", "count", dispatched)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running hourly)")
	return nil
}

// Stop stops the sweep job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
