package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ShippingMethod is the delivery speed the buyer selected at checkout. It is
// shared vocabulary between orders and fulfillment units and feeds the
// delivery estimate.
type ShippingMethod string

const (
	// ShippingStandard is regular ground shipping.
	ShippingStandard ShippingMethod = "standard"

	// ShippingExpress is next-day shipping.
	ShippingExpress ShippingMethod = "express"

	// ShippingPremium is same-day shipping.
	ShippingPremium ShippingMethod = "premium"
)

// Validate checks that the method is one of the known values.
func (m ShippingMethod) Validate() error {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingPremium:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"shipping method",
		fmt.Errorf("%q is not a known shipping method", string(m)),
	)
}

// String returns the method name.
func (m ShippingMethod) String() string {
	return string(m)
}
