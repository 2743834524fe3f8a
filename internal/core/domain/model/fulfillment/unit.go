package fulfillment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrUnitIsNotConstructed is returned when a Unit instance was not created
	// through NewUnit or RestoreUnit.
	ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit or RestoreUnit constructor")

	// ErrHistoryOutOfSync is returned when the trailing history entry does not
	// match the unit's current status. This should never happen for data
	// written by this engine; it indicates corruption or an out-of-band write.
	ErrHistoryOutOfSync = errors.New("latest history entry does not match current status")
)

// statusDescriptions are the human descriptions recorded in history entries
// and notification payloads when the caller supplies none.
func statusDescriptions() map[Status]string {
	return map[Status]string{
		Pending:        "Order received and awaiting processing",
		Processing:     "Seller is preparing the shipment",
		Shipped:        "Package handed to the carrier",
		InTransit:      "Package is moving through the carrier network",
		OutForDelivery: "Package is out for delivery",
		Delivered:      "Package delivered",
		Failed:         "Delivery failed",
		Returned:       "Package returned to seller",
	}
}

// DefaultDescription returns the stock human description for a status.
func DefaultDescription(s Status) string {
	return statusDescriptions()[s]
}

// TransitionDetails carries the optional attributes a caller may attach to a
// status change. Empty fields leave the corresponding unit attribute
// untouched.
type TransitionDetails struct {
	CarrierName           string
	CarrierTrackingNumber string
	Location              string
	Description           string
}

// Unit is the aggregate root for the shipping lifecycle of one order line.
//
// Invariants:
//   - Status changes only through TransitionTo/AssignCarrier, following the
//     legal edge set in Status.
//   - The tracking code is immutable once assigned.
//   - Every accepted transition appends exactly one history entry, and the
//     trailing entry's status always equals the current status.
//   - The version counter increments on every persisted mutation; the
//     repository uses it to detect concurrent writers.
type Unit struct {
	id          kernel.UUID
	orderLineID kernel.UUID
	sellerID    kernel.UUID

	status       Status
	trackingCode TrackingCode

	carrierName           string
	carrierTrackingNumber string
	currentLocation       string

	shippingMethod      kernel.ShippingMethod
	originLocality      string
	destinationLocality string
	estimatedDelivery   time.Time

	version          int
	persistedVersion int
	createdAt        time.Time
	updatedAt        time.Time

	history          []HistoryEntry
	persistedHistory int

	isConstructed bool
}

// UnitSnapshot is the persisted state of a Unit, used by repositories to
// restore the aggregate.
type UnitSnapshot struct {
	ID                    kernel.UUID
	OrderLineID           kernel.UUID
	SellerID              kernel.UUID
	Status                Status
	TrackingCode          TrackingCode
	CarrierName           string
	CarrierTrackingNumber string
	CurrentLocation       string
	ShippingMethod        kernel.ShippingMethod
	OriginLocality        string
	DestinationLocality   string
	EstimatedDelivery     time.Time
	Version               int
	CreatedAt             time.Time
	UpdatedAt             time.Time
	History               []HistoryEntry
}

// NewUnit creates a fulfillment unit for an order line. The unit starts in
// Pending with one seeded history entry and version 1.
func NewUnit(
	id kernel.UUID,
	orderLineID kernel.UUID,
	sellerID kernel.UUID,
	trackingCode TrackingCode,
	shippingMethod kernel.ShippingMethod,
	originLocality string,
	destinationLocality string,
	estimatedDelivery time.Time,
	now time.Time,
) (*Unit, error) {
	if err := errors.Join(
		id.Validate(),
		orderLineID.Validate(),
		sellerID.Validate(),
		trackingCode.Validate(),
		shippingMethod.Validate(),
		validateLocality("origin locality", originLocality),
		validateLocality("destination locality", destinationLocality),
	); err != nil {
		return nil, err
	}

	unit := &Unit{
		id:                  id,
		orderLineID:         orderLineID,
		sellerID:            sellerID,
		status:              Pending,
		trackingCode:        trackingCode,
		shippingMethod:      shippingMethod,
		originLocality:      originLocality,
		destinationLocality: destinationLocality,
		estimatedDelivery:   estimatedDelivery,
		version:             1,
		persistedVersion:    0,
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	seed, err := NewHistoryEntry(id, Pending, "", DefaultDescription(Pending), now)
	if err != nil {
		return nil, err
	}
	unit.history = append(unit.history, seed)

	return unit, nil
}

// RestoreUnit reconstructs a unit from its persisted snapshot. History must
// be supplied in timestamp order; all of it is treated as already persisted.
func RestoreUnit(s UnitSnapshot) (*Unit, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.OrderLineID.Validate(),
		s.SellerID.Validate(),
		s.Status.Validate(),
		s.TrackingCode.Validate(),
		s.ShippingMethod.Validate(),
	); err != nil {
		return nil, err
	}

	if n := len(s.History); n > 0 && s.History[n-1].Status() != s.Status {
		return nil, ErrHistoryOutOfSync
	}

	return &Unit{
		id:                    s.ID,
		orderLineID:           s.OrderLineID,
		sellerID:              s.SellerID,
		status:                s.Status,
		trackingCode:          s.TrackingCode,
		carrierName:           s.CarrierName,
		carrierTrackingNumber: s.CarrierTrackingNumber,
		currentLocation:       s.CurrentLocation,
		shippingMethod:        s.ShippingMethod,
		originLocality:        s.OriginLocality,
		destinationLocality:   s.DestinationLocality,
		estimatedDelivery:     s.EstimatedDelivery,
		version:               s.Version,
		persistedVersion:      s.Version,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
		history:               s.History,
		persistedHistory:      len(s.History),
		isConstructed:         true,
	}, nil
}

// Validate ensures the unit was created via NewUnit or RestoreUnit.
func (u *Unit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnitIsNotConstructed
	}
	return nil
}

// ID returns the unit identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// OrderLineID returns the order line the unit fulfills.
func (u *Unit) OrderLineID() kernel.UUID {
	return u.orderLineID
}

// SellerID returns the seller responsible for the unit.
func (u *Unit) SellerID() kernel.UUID {
	return u.sellerID
}

// Status returns the current lifecycle status.
func (u *Unit) Status() Status {
	return u.status
}

// TrackingCode returns the public tracking code.
func (u *Unit) TrackingCode() TrackingCode {
	return u.trackingCode
}

// CarrierName returns the assigned carrier's display name, if any.
func (u *Unit) CarrierName() string {
	return u.carrierName
}

// CarrierTrackingNumber returns the carrier-side tracking number, if any.
func (u *Unit) CarrierTrackingNumber() string {
	return u.carrierTrackingNumber
}

// CurrentLocation returns the last reported free-text location, if any.
func (u *Unit) CurrentLocation() string {
	return u.currentLocation
}

// ShippingMethod returns the delivery speed selected at checkout.
func (u *Unit) ShippingMethod() kernel.ShippingMethod {
	return u.shippingMethod
}

// OriginLocality returns the seller's dispatch locality.
func (u *Unit) OriginLocality() string {
	return u.originLocality
}

// DestinationLocality returns the buyer's delivery locality.
func (u *Unit) DestinationLocality() string {
	return u.destinationLocality
}

// EstimatedDelivery returns the current delivery estimate.
func (u *Unit) EstimatedDelivery() time.Time {
	return u.estimatedDelivery
}

// Version returns the optimistic-concurrency counter. Mutating a restored
// unit bumps it once per persistence cycle.
func (u *Unit) Version() int {
	return u.version
}

// PersistedVersion returns the version the unit was restored with. The
// repository guards its update on this value: a concurrent writer that
// committed first makes the guard fail instead of losing a history entry.
func (u *Unit) PersistedVersion() int {
	return u.persistedVersion
}

// touch marks a mutation: bumps updatedAt, and the version once per
// persistence cycle.
func (u *Unit) touch(now time.Time) {
	if u.version == u.persistedVersion {
		u.version++
	}
	u.updatedAt = now
}

// CreatedAt returns the creation timestamp.
func (u *Unit) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (u *Unit) UpdatedAt() time.Time {
	return u.updatedAt
}

// History returns the full status ledger in timestamp order.
func (u *Unit) History() []HistoryEntry {
	out := make([]HistoryEntry, len(u.history))
	copy(out, u.history)
	return out
}

// UncommittedHistory returns the entries appended since the unit was created
// or restored. The repository inserts exactly these on Update.
func (u *Unit) UncommittedHistory() []HistoryEntry {
	out := make([]HistoryEntry, len(u.history)-u.persistedHistory)
	copy(out, u.history[u.persistedHistory:])
	return out
}

// TransitionTo moves the unit to target, enforcing the legal edge set.
//
// On success the status, any carrier/location details, and updatedAt are
// mutated together with exactly one appended history entry, which is
// returned. On failure the unit is left untouched.
func (u *Unit) TransitionTo(target Status, details TransitionDetails, now time.Time) (HistoryEntry, error) {
	if err := u.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	newStatus, err := u.status.TransitionTo(target)
	if err != nil {
		return HistoryEntry{}, err
	}

	description := details.Description
	if description == "" {
		description = DefaultDescription(newStatus)
	}

	entry, err := NewHistoryEntry(u.id, newStatus, details.Location, description, now)
	if err != nil {
		return HistoryEntry{}, err
	}

	u.status = newStatus
	if details.CarrierName != "" {
		u.carrierName = details.CarrierName
	}
	if details.CarrierTrackingNumber != "" {
		u.carrierTrackingNumber = details.CarrierTrackingNumber
	}
	if details.Location != "" {
		u.currentLocation = details.Location
	}
	u.touch(now)
	u.history = append(u.history, entry)

	return entry, nil
}

// AssignCarrier records the carrier handling the unit. A pending or
// processing unit transitions to Shipped (the returned entry is non-nil and
// transitioned is true); a unit already moving keeps its status and only the
// carrier fields change. Terminal units reject the assignment.
func (u *Unit) AssignCarrier(name, trackingNumber string, now time.Time) (*HistoryEntry, bool, error) {
	if err := u.Validate(); err != nil {
		return nil, false, err
	}
	if name == "" {
		return nil, false, errs.NewValueIsRequiredError("carrier name")
	}
	if u.status.IsTerminal() {
		return nil, false, &InvalidTransitionError{From: u.status, To: Shipped}
	}

	if u.status == Pending || u.status == Processing {
		entry, err := u.TransitionTo(Shipped, TransitionDetails{
			CarrierName:           name,
			CarrierTrackingNumber: trackingNumber,
		}, now)
		if err != nil {
			return nil, false, err
		}
		return &entry, true, nil
	}

	u.carrierName = name
	if trackingNumber != "" {
		u.carrierTrackingNumber = trackingNumber
	}
	u.touch(now)
	return nil, false, nil
}

// Reschedule replaces the delivery estimate, typically after carrier
// assignment.
func (u *Unit) Reschedule(estimatedDelivery time.Time, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.estimatedDelivery = estimatedDelivery
	u.touch(now)
	return nil
}

// IsOverdue reports whether a non-terminal unit is past its delivery
// estimate.
func (u *Unit) IsOverdue(asOf time.Time) bool {
	return !u.status.IsTerminal() && u.estimatedDelivery.Before(asOf)
}

func validateLocality(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
