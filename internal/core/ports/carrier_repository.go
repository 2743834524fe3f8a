package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
)

// CarrierRepository defines the persistence contract for the carrier catalog.
type CarrierRepository interface {
	// Add registers a carrier in the catalog.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// GetByName retrieves a carrier by its unique display name. Unknown
	// names fail with errs.ObjectNotFoundError; carrier assignment treats
	// that as "keep the heuristic estimate".
	GetByName(ctx context.Context, name string) (*carrier.Carrier, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)
}
