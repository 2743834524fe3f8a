package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// ErrLineTotalMismatch is returned when the stored line total does not equal
// unit price times quantity.
var ErrLineTotalMismatch = errors.New("line total does not match unit price times quantity")

// Line is one purchased product within an order: the unit of fulfillment.
// Each line belongs to exactly one seller and ships from that seller's
// locality.
type Line struct {
	id             kernel.UUID
	orderID        kernel.UUID
	sellerID       kernel.UUID
	productID      kernel.UUID
	quantity       int
	unitPrice      kernel.Money
	total          kernel.Money
	originLocality string

	isConstructed bool
}

// NewLine creates an order line and verifies that total equals unit price
// times quantity.
func NewLine(
	id kernel.UUID,
	orderID kernel.UUID,
	sellerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	total kernel.Money,
	originLocality string,
) (Line, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		sellerID.Validate(),
		productID.Validate(),
	); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	if originLocality == "" {
		return Line{}, errs.NewValueIsRequiredError("origin locality")
	}
	if !unitPrice.MulQuantity(quantity).IsEqual(total) {
		return Line{}, ErrLineTotalMismatch
	}

	return Line{
		id:             id,
		orderID:        orderID,
		sellerID:       sellerID,
		productID:      productID,
		quantity:       quantity,
		unitPrice:      unitPrice,
		total:          total,
		originLocality: originLocality,
		isConstructed:  true,
	}, nil
}

// Validate ensures the line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the order the line belongs to.
func (l Line) OrderID() kernel.UUID {
	return l.orderID
}

// SellerID returns the seller fulfilling the line.
func (l Line) SellerID() kernel.UUID {
	return l.sellerID
}

// ProductID returns the purchased product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the purchased quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-item price.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns the line total.
func (l Line) Total() kernel.Money {
	return l.total
}

// OriginLocality returns the seller's dispatch locality.
func (l Line) OriginLocality() string {
	return l.originLocality
}
