// Package ports defines the contracts between the fulfillment core and its
// adapters. These interfaces establish boundaries between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// FulfillmentRepository defines the persistence contract for fulfillment unit
// aggregates and their append-only status history.
type FulfillmentRepository interface {
	// Add persists a batch of freshly created units together with their
	// seeded history entries. Units must be valid and not yet stored.
	Add(ctx context.Context, units []*fulfillment.Unit) error

	// Update persists changes to an existing unit and appends its
	// uncommitted history entries. The write is guarded by the unit's
	// version: if another writer committed first, Update fails with
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, unit *fulfillment.Unit) error

	// Get retrieves a unit by its identifier, history included.
	Get(ctx context.Context, id kernel.UUID) (*fulfillment.Unit, error)

	// GetByTrackingCode retrieves a unit by its public tracking code,
	// history included.
	GetByTrackingCode(ctx context.Context, code fulfillment.TrackingCode) (*fulfillment.Unit, error)

	// ExistsTrackingCode reports whether a tracking code is already
	// assigned to any unit.
	ExistsTrackingCode(ctx context.Context, code fulfillment.TrackingCode) (bool, error)

	// GetOverdue retrieves non-terminal units whose delivery estimate lies
	// before asOf.
	GetOverdue(ctx context.Context, asOf time.Time) ([]*fulfillment.Unit, error)
}
