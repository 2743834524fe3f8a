package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the read contract for the upstream marketplace
// orders that fulfillment tracks. Orders are written by the checkout system;
// this subsystem only reads them.
type OrderRepository interface {
	// Add persists an order with its lines. Exposed for seeding and tests;
	// production writes happen upstream.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByLineID retrieves the order that contains the given line. Used to
	// resolve the buyer behind a fulfillment unit.
	GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.Order, error)
}
