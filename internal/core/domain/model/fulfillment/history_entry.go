package fulfillment

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// HistoryEntry is one immutable record in a unit's status ledger: the status
// the unit held at a point in time, with optional location and free-text
// description. Entries are append-only and ordered by OccurredAt ascending;
// they are never mutated or deleted.
type HistoryEntry struct {
	id          kernel.UUID
	unitID      kernel.UUID
	status      Status
	location    string
	description string
	occurredAt  time.Time
}

// NewHistoryEntry creates a ledger entry for a unit at the given moment.
func NewHistoryEntry(
	unitID kernel.UUID,
	status Status,
	location string,
	description string,
	occurredAt time.Time,
) (HistoryEntry, error) {
	if err := unitID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:          kernel.NewUUID(),
		unitID:      unitID,
		status:      status,
		location:    location,
		description: description,
		occurredAt:  occurredAt,
	}, nil
}

// RestoreHistoryEntry reconstructs an entry from persistence, keeping its
// stored identifier.
func RestoreHistoryEntry(
	id kernel.UUID,
	unitID kernel.UUID,
	status Status,
	location string,
	description string,
	occurredAt time.Time,
) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	entry, err := NewHistoryEntry(unitID, status, location, description, occurredAt)
	if err != nil {
		return HistoryEntry{}, err
	}
	entry.id = id
	return entry, nil
}

// ID returns the entry identifier.
func (e HistoryEntry) ID() kernel.UUID {
	return e.id
}

// UnitID returns the fulfillment unit the entry belongs to.
func (e HistoryEntry) UnitID() kernel.UUID {
	return e.unitID
}

// Status returns the status recorded by the entry.
func (e HistoryEntry) Status() Status {
	return e.status
}

// Location returns the optional free-text location.
func (e HistoryEntry) Location() string {
	return e.location
}

// Description returns the optional free-text description.
func (e HistoryEntry) Description() string {
	return e.description
}

// OccurredAt returns the entry timestamp.
func (e HistoryEntry) OccurredAt() time.Time {
	return e.occurredAt
}
