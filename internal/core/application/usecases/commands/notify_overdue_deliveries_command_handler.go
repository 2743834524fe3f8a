package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// NotifyOverdueDeliveriesCommandHandler finds non-terminal units past their
// delivery estimate and notifies their buyers. The sweep mutates nothing:
// units stay in their current status and a unit still overdue on the next
// sweep is reported again.
//
// Notification delivery is best effort. A failed dispatch is logged and the
// sweep moves on to the next unit.
type NotifyOverdueDeliveriesCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewNotifyOverdueDeliveriesCommandHandler creates a handler for the overdue
// sweep.
func NewNotifyOverdueDeliveriesCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
) NotifyOverdueDeliveriesCommandHandler {
	return NotifyOverdueDeliveriesCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle runs one sweep and returns the number of notifications dispatched.
func (h *NotifyOverdueDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd NotifyOverdueDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	asOf := h.now().UTC()
	units, err := uow.FulfillmentRepository().GetOverdue(ctx, asOf)
	if err != nil {
		return 0, err
	}

	var notifications []ports.Notification
	for _, unit := range units {
		aggregate, err := uow.OrderRepository().GetByLineID(ctx, unit.OrderLineID())
		if err != nil {
			h.logger.WarnContext(ctx, "overdue sweep could not resolve buyer",
				"unit_id", unit.ID().String(),
				"error", err)
			continue
		}
		notifications = append(notifications, ports.Notification{
			Kind:         ports.NotificationDeliveryOverdue,
			RecipientID:  aggregate.BuyerID(),
			UnitID:       unit.ID(),
			TrackingCode: unit.TrackingCode(),
			Status:       unit.Status(),
			Description:  "Delivery is past its estimated date",
		})
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	dispatched := 0
	for _, notification := range notifications {
		if err := h.dispatcher.Dispatch(ctx, notification); err != nil {
			h.logger.WarnContext(ctx, "notification dispatch failed",
				"kind", string(notification.Kind),
				"unit_id", notification.UnitID.String(),
				"error", err)
			continue
		}
		dispatched++
	}

	return dispatched, nil
}
