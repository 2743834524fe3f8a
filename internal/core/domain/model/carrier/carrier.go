package carrier

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier constructor")

// Carrier is a shipping company known to the marketplace, with its promised
// transit time. The catalog is reference data: operators add carriers, the
// engine only reads them to refine delivery estimates after assignment.
type Carrier struct {
	id            kernel.UUID
	name          string
	estimatedDays int

	isConstructed bool
}

// NewCarrier registers a shipping company with its promised transit days.
func NewCarrier(id kernel.UUID, name string, estimatedDays int) (*Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("carrier name")
	}
	if estimatedDays < 0 {
		return nil, errs.NewValueIsOutOfRangeError("estimated days", estimatedDays, 0, nil)
	}

	return &Carrier{
		id:            id,
		name:          name,
		estimatedDays: estimatedDays,
		isConstructed: true,
	}, nil
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(id kernel.UUID, name string, estimatedDays int) (*Carrier, error) {
	return NewCarrier(id, name, estimatedDays)
}

// Validate ensures the carrier was created via its constructor.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// ID returns the carrier identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's display name, unique within the catalog.
func (c *Carrier) Name() string {
	return c.name
}

// EstimatedDays returns the carrier's promised transit time in days.
func (c *Carrier) EstimatedDays() int {
	return c.estimatedDays
}

// EstimateFrom returns the delivery estimate the carrier promises when it
// picks a package up at the given moment.
func (c *Carrier) EstimateFrom(pickedUpAt time.Time) time.Time {
	return pickedUpAt.AddDate(0, 0, c.estimatedDays)
}
