package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AssignCarrierCommandHandler records the hand-over of a unit to a shipping
// company. A pending or processing unit moves to shipped; a unit already
// moving only gets its carrier details updated. When the carrier is in the
// catalog, its promised transit time replaces the heuristic delivery
// estimate.
//
// The buyer is notified after commit. Notification delivery is best effort:
// failures are logged and never fail the assignment.
type AssignCarrierCommandHandler struct {
	uowFactory UoWFactory
	estimator  services.DeliveryEstimator
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
func NewAssignCarrierCommandHandler(
	uowFactory UoWFactory,
	estimator services.DeliveryEstimator,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle processes the carrier assignment. Only the unit's seller or an
// admin may assign a carrier.
func (h *AssignCarrierCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCarrierCommand,
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

	if err := authorizeSellerWrite("assign carrier", cmd.Actor(), unit); err != nil {
		return nil, err
	}

	now := h.now().UTC()
	_, transitioned, err := unit.AssignCarrier(cmd.CarrierName(), cmd.CarrierTrackingNumber(), now)
	if err != nil {
		return nil, err
	}

	known, err := uow.CarrierRepository().GetByName(ctx, cmd.CarrierName())
	switch {
	case err == nil:
		estimate, err := h.estimator.EstimateWithCarrier(known, now)
		if err != nil {
			return nil, err
		}
		if err := unit.Reschedule(estimate, now); err != nil {
			return nil, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// Unknown carriers keep the heuristic estimate.
	default:
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

	if transitioned {
		h.notify(ctx, ports.Notification{
			Kind:         ports.NotificationCarrierAssigned,
			RecipientID:  aggregate.BuyerID(),
			UnitID:       unit.ID(),
			TrackingCode: unit.TrackingCode(),
			Status:       unit.Status(),
			Description:  fulfillment.DefaultDescription(unit.Status()),
		})
	}

	return unit, nil
}

func (h *AssignCarrierCommandHandler) notify(ctx context.Context, notification ports.Notification) {
	if err := h.dispatcher.Dispatch(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "notification dispatch failed",
			"kind", string(notification.Kind),
			"unit_id", notification.UnitID.String(),
			"error", err)
	}
}
