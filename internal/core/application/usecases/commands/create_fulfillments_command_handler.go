package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateFulfillmentsCommandHandler opens fulfillment tracking for a placed
// order. The order's lines are partitioned by seller and one unit is created
// per line, each with a unique tracking code and an initial delivery
// estimate. All units are persisted in one transaction: tracking opens for
// the whole order or not at all.
type CreateFulfillmentsCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	assembler  services.GroupAssembler
	estimator  services.DeliveryEstimator
	generator  *services.TrackingCodeGenerator
	now        func() time.Time
}

// NewCreateFulfillmentsCommandHandler creates a handler for opening
// fulfillment tracking.
func NewCreateFulfillmentsCommandHandler(
	uowFactory FulfillmentUoWFactory,
	assembler services.GroupAssembler,
	estimator services.DeliveryEstimator,
	generator *services.TrackingCodeGenerator,
) CreateFulfillmentsCommandHandler {
	return CreateFulfillmentsCommandHandler{
		uowFactory: uowFactory,
		assembler:  assembler,
		estimator:  estimator,
		generator:  generator,
		now:        time.Now,
	}
}

// Handle processes the command and returns the created units in seller-group
// order. Only admins (the checkout integration) may open tracking.
func (h *CreateFulfillmentsCommandHandler) Handle(
	ctx context.Context,
	cmd CreateFulfillmentsCommand,
) ([]*fulfillment.Unit, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor().IsAdmin() {
		return nil, errs.NewUnauthorizedError("create fulfillments", cmd.Actor().Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	groups, err := h.assembler.GroupBySeller(aggregate)
	if err != nil {
		return nil, err
	}

	fulfillmentRepo := uow.FulfillmentRepository()
	now := h.now().UTC()

	var units []*fulfillment.Unit
	for _, group := range groups {
		for _, line := range group.Lines {
			code, err := h.generator.GenerateUnique(ctx, fulfillmentRepo.ExistsTrackingCode)
			if err != nil {
				return nil, err
			}

			estimate := h.estimator.Estimate(
				aggregate.ShippingMethod(),
				line.OriginLocality(),
				aggregate.DestinationLocality(),
				aggregate.CreatedAt(),
			)

			unit, err := fulfillment.NewUnit(
				kernel.NewUUID(),
				line.ID(),
				line.SellerID(),
				code,
				aggregate.ShippingMethod(),
				line.OriginLocality(),
				aggregate.DestinationLocality(),
				estimate,
				now,
			)
			if err != nil {
				return nil, err
			}
			units = append(units, unit)
		}
	}

	if err := fulfillmentRepo.Add(ctx, units); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return units, nil
}
