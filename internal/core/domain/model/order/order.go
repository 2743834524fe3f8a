package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// ErrOrderTotalMismatch is returned when the stored order total does not equal
// the sum of its line totals plus shipping minus discount.
var ErrOrderTotalMismatch = errors.New("order total does not match the sum of line totals plus shipping minus discount")

// Order is a placed, paid marketplace order: the upstream fact that
// fulfillment tracks. Fulfillment never mutates orders; the aggregate here is
// read-only after construction.
//
// Invariants:
//   - An order has at least one line.
//   - Total equals the sum of line totals plus shipping cost minus discount.
type Order struct {
	id                  kernel.UUID
	buyerID             kernel.UUID
	shippingMethod      kernel.ShippingMethod
	destinationLocality string
	shippingCost        kernel.Money
	discount            kernel.Money
	total               kernel.Money
	createdAt           time.Time
	lines               []Line

	isConstructed bool
}

// NewOrder creates an order and verifies the total invariant against its
// lines.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	shippingMethod kernel.ShippingMethod,
	destinationLocality string,
	shippingCost kernel.Money,
	discount kernel.Money,
	total kernel.Money,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		shippingMethod.Validate(),
	); err != nil {
		return nil, err
	}
	if destinationLocality == "" {
		return nil, errs.NewValueIsRequiredError("destination locality")
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	var linesTotal kernel.Money
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		linesTotal = linesTotal.Add(line.Total())
	}

	expected, err := linesTotal.Add(shippingCost).Sub(discount)
	if err != nil {
		return nil, err
	}
	if !expected.IsEqual(total) {
		return nil, ErrOrderTotalMismatch
	}

	return &Order{
		id:                  id,
		buyerID:             buyerID,
		shippingMethod:      shippingMethod,
		destinationLocality: destinationLocality,
		shippingCost:        shippingCost,
		discount:            discount,
		total:               total,
		createdAt:           createdAt,
		lines:               lines,
		isConstructed:       true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The same invariants
// apply; stored data that violates them is rejected rather than repaired.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	shippingMethod kernel.ShippingMethod,
	destinationLocality string,
	shippingCost kernel.Money,
	discount kernel.Money,
	total kernel.Money,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	return NewOrder(id, buyerID, shippingMethod, destinationLocality,
		shippingCost, discount, total, createdAt, lines)
}

// Validate ensures the order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// ShippingMethod returns the delivery speed selected at checkout.
func (o *Order) ShippingMethod() kernel.ShippingMethod {
	return o.shippingMethod
}

// DestinationLocality returns the buyer's delivery locality.
func (o *Order) DestinationLocality() string {
	return o.destinationLocality
}

// ShippingCost returns the shipping charge.
func (o *Order) ShippingCost() kernel.Money {
	return o.shippingCost
}

// Discount returns the order-level discount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Total returns the grand total the buyer paid.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns the order lines.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Line returns the order line with the given identifier.
func (o *Order) Line(lineID kernel.UUID) (Line, error) {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return Line{}, errs.NewObjectNotFoundError("lineId", lineID)
}
