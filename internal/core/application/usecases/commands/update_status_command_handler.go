package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/ports"
)

// UpdateStatusCommandHandler moves a fulfillment unit along its lifecycle.
// The aggregate enforces the legal edge set; an illegal edge fails the
// command and leaves the unit untouched. The write is version-guarded, so a
// concurrent writer makes the command fail with a version conflict instead of
// silently losing a history entry.
//
// The buyer is notified of the new status after commit, best effort.
type UpdateStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewUpdateStatusCommandHandler creates a handler for status updates.
func NewUpdateStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle processes the status update. Only the unit's seller or an admin may
// move a unit.
func (h *UpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStatusCommand,
) (*fulfillment.Unit, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unit, err := uow.FulfillmentRepository().Get(ctx, cmd.UnitID())
	if err != nil {
		return nil, err
	}

	if err := authorizeSellerWrite("update status", cmd.Actor(), unit); err != nil {
		return nil, err
	}

	entry, err := unit.TransitionTo(cmd.Target(), fulfillment.TransitionDetails{
		Location:    cmd.Location(),
		Description: cmd.Description(),
	}, h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uow.FulfillmentRepository().Update(ctx, unit); err != nil {
		return nil, err
	}

	aggregate, err := uow.OrderRepository().GetByLineID(ctx, unit.OrderLineID())
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	notification := ports.Notification{
		Kind:         ports.NotificationStatusChanged,
		RecipientID:  aggregate.BuyerID(),
		UnitID:       unit.ID(),
		TrackingCode: unit.TrackingCode(),
		Status:       unit.Status(),
		Description:  entry.Description(),
	}
	if err := h.dispatcher.Dispatch(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "notification dispatch failed",
			"kind", string(notification.Kind),
			"unit_id", notification.UnitID.String(),
			"error", err)
	}

	return unit, nil
}
