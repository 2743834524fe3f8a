package services

import (
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryEstimator is a domain service computing delivery date estimates.
//
// The initial estimate is a pure function of the shipping method, the
// origin/destination localities, and the order creation date:
//   - standard adds 3 days, express 1 day, premium 0 days
//   - shipping across localities adds 1 more day
//
// After a carrier is assigned, the carrier's own promised transit time
// replaces the heuristic.
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a new DeliveryEstimator instance.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// baseDays returns the transit days promised by each shipping method.
func baseDays(method kernel.ShippingMethod) int {
	switch method {
	case kernel.ShippingExpress:
		return 1
	case kernel.ShippingPremium:
		return 0
	default:
		return 3
	}
}

// Estimate computes the initial delivery estimate for a unit created from an
// order placed at createdAt. The same inputs always produce the same
// estimate.
func (e DeliveryEstimator) Estimate(
	method kernel.ShippingMethod,
	originLocality string,
	destinationLocality string,
	createdAt time.Time,
) time.Time {
	days := baseDays(method)
	if originLocality != destinationLocality {
		days++
	}
	return createdAt.AddDate(0, 0, days)
}

// EstimateWithCarrier recomputes the estimate once a catalog carrier picks
// the package up.
func (e DeliveryEstimator) EstimateWithCarrier(c *carrier.Carrier, pickedUpAt time.Time) (time.Time, error) {
	if err := c.Validate(); err != nil {
		return time.Time{}, err
	}
	return c.EstimateFrom(pickedUpAt), nil
}
