package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetSellerFulfillmentsQueryIsNotConstructed = errors.New(
	"GetSellerFulfillmentsQuery must be created via NewGetSellerFulfillmentsQuery constructor",
)

// GetSellerFulfillmentsQuery retrieves the fulfillment units a seller is
// responsible for, optionally filtered by status. Sellers may only read their
// own units; admins may read any seller's.
type GetSellerFulfillmentsQuery struct {
	sellerID     kernel.UUID
	status       fulfillment.Status
	statusFilter bool
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetSellerFulfillmentsQuery creates the seller-facing listing query.
// Pass fulfillment.Unknown as status for an unfiltered listing.
func NewGetSellerFulfillmentsQuery(
	sellerID kernel.UUID,
	status fulfillment.Status,
	actor kernel.Actor,
) (GetSellerFulfillmentsQuery, error) {
	if err := errors.Join(sellerID.Validate(), actor.Validate()); err != nil {
		return GetSellerFulfillmentsQuery{}, err
	}

	statusFilter := status != fulfillment.Unknown
	if statusFilter {
		if err := status.Validate(); err != nil {
			return GetSellerFulfillmentsQuery{}, err
		}
	}

	allowed := actor.IsAdmin() ||
		(actor.Role() == kernel.RoleSeller && actor.ID().IsEqual(sellerID))
	if !allowed {
		return GetSellerFulfillmentsQuery{}, errs.NewUnauthorizedError(
			"list seller fulfillments", actor.Role().String(),
		)
	}

	return GetSellerFulfillmentsQuery{
		sellerID:     sellerID,
		status:       status,
		statusFilter: statusFilter,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerFulfillmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerFulfillmentsQueryIsNotConstructed)
}

// SellerID returns the seller whose units are listed.
func (q GetSellerFulfillmentsQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// Status returns the status filter. Meaningful only when HasStatusFilter.
func (q GetSellerFulfillmentsQuery) Status() fulfillment.Status {
	return q.status
}

// HasStatusFilter reports whether the listing is filtered by status.
func (q GetSellerFulfillmentsQuery) HasStatusFilter() bool {
	return q.statusFilter
}

// SellerFulfillmentResponse is one unit in the seller's listing.
type SellerFulfillmentResponse struct {
	UnitID            kernel.UUID `json:"unitId"`
	OrderLineID       kernel.UUID `json:"orderLineId"`
	TrackingCode      string      `json:"trackingCode"`
	Status            string      `json:"status"`
	CarrierName       string      `json:"carrierName,omitempty"`
	DestinationLocality string    `json:"destinationLocality"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
