package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetBuyerFulfillmentsQueryIsNotConstructed = errors.New(
	"GetBuyerFulfillmentsQuery must be created via NewGetBuyerFulfillmentsQuery constructor",
)

// GetBuyerFulfillmentsQuery retrieves every fulfillment unit belonging to a
// buyer's orders. Buyers may only read their own units; admins may read any
// buyer's.
type GetBuyerFulfillmentsQuery struct {
	buyerID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetBuyerFulfillmentsQuery creates the buyer-facing listing query.
// Authorization is decided here: construction fails with
// errs.UnauthorizedError when the actor may not see the buyer's units.
func NewGetBuyerFulfillmentsQuery(buyerID kernel.UUID, actor kernel.Actor) (GetBuyerFulfillmentsQuery, error) {
	if err := errors.Join(buyerID.Validate(), actor.Validate()); err != nil {
		return GetBuyerFulfillmentsQuery{}, err
	}

	allowed := actor.IsAdmin() ||
		(actor.Role() == kernel.RoleBuyer && actor.ID().IsEqual(buyerID))
	if !allowed {
		return GetBuyerFulfillmentsQuery{}, errs.NewUnauthorizedError(
			"list buyer fulfillments", actor.Role().String(),
		)
	}

	return GetBuyerFulfillmentsQuery{
		buyerID: buyerID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerFulfillmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerFulfillmentsQueryIsNotConstructed)
}

// BuyerID returns the buyer whose units are listed.
func (q GetBuyerFulfillmentsQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// BuyerFulfillmentResponse is one unit in the buyer's listing.
type BuyerFulfillmentResponse struct {
	UnitID            kernel.UUID `json:"unitId"`
	OrderID           kernel.UUID `json:"orderId"`
	OrderLineID       kernel.UUID `json:"orderLineId"`
	TrackingCode      string      `json:"trackingCode"`
	Status            string      `json:"status"`
	CarrierName       string      `json:"carrierName,omitempty"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
