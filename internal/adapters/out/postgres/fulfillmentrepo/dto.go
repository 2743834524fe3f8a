// Package fulfillmentrepo provides data transfer objects and mapping functions
// for fulfillment unit persistence. This package implements the repository
// pattern for the fulfillment aggregate, handling the conversion between
// domain entities and database representations.
package fulfillmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UnitDTO represents the database structure for persisting fulfillment units.
// The tracking code carries a unique index to make the public identifier a
// hard invariant, and the version column backs optimistic locking.
type UnitDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderLineID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	SellerID              uuid.UUID `gorm:"type:uuid;index"`
	Status                string    `gorm:"type:varchar(32);index"`
	TrackingCode          string    `gorm:"type:varchar(11);uniqueIndex"`
	CarrierName           string
	CarrierTrackingNumber string
	CurrentLocation       string
	ShippingMethod        string `gorm:"type:varchar(16)"`
	OriginLocality        string
	DestinationLocality   string
	EstimatedDelivery     time.Time `gorm:"index"`
	Version               int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for fulfillment units.
func (UnitDTO) TableName() string {
	return "fulfillment_units"
}

// HistoryEntryDTO represents one row of the append-only status ledger.
// Rows are only ever inserted.
type HistoryEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID      uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:varchar(32)"`
	Location    string
	Description string
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "fulfillment_status_history"
}

// fromDomain converts a unit aggregate to its database representation.
// History entries are mapped separately; see historyFromDomain.
func fromDomain(unit *fulfillment.Unit) UnitDTO {
	return UnitDTO{
		ID:                    unit.ID().Bytes(),
		OrderLineID:           unit.OrderLineID().Bytes(),
		SellerID:              unit.SellerID().Bytes(),
		Status:                unit.Status().String(),
		TrackingCode:          unit.TrackingCode().String(),
		CarrierName:           unit.CarrierName(),
		CarrierTrackingNumber: unit.CarrierTrackingNumber(),
		CurrentLocation:       unit.CurrentLocation(),
		ShippingMethod:        unit.ShippingMethod().String(),
		OriginLocality:        unit.OriginLocality(),
		DestinationLocality:   unit.DestinationLocality(),
		EstimatedDelivery:     unit.EstimatedDelivery(),
		Version:               unit.Version(),
		CreatedAt:             unit.CreatedAt(),
		UpdatedAt:             unit.UpdatedAt(),
	}
}

// historyFromDomain converts history entries to their database rows.
func historyFromDomain(entries []fulfillment.HistoryEntry) []HistoryEntryDTO {
	dtos := make([]HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, HistoryEntryDTO{
			ID:          entry.ID().Bytes(),
			UnitID:      entry.UnitID().Bytes(),
			Status:      entry.Status().String(),
			Location:    entry.Location(),
			Description: entry.Description(),
			OccurredAt:  entry.OccurredAt(),
		})
	}
	return dtos
}

// toDomain converts database rows to a unit aggregate, history included.
// History rows must be ordered by occurred_at ascending.
func toDomain(dto UnitDTO, historyDTOs []HistoryEntryDTO) (*fulfillment.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderLineID, err := kernel.UUIDFromBytes(dto.OrderLineID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	status, err := fulfillment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	trackingCode, err := fulfillment.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	history := make([]fulfillment.HistoryEntry, 0, len(historyDTOs))
	for _, entryDTO := range historyDTOs {
		entry, entryErr := historyEntryToDomain(entryDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return fulfillment.RestoreUnit(fulfillment.UnitSnapshot{
		ID:                    id,
		OrderLineID:           orderLineID,
		SellerID:              sellerID,
		Status:                status,
		TrackingCode:          trackingCode,
		CarrierName:           dto.CarrierName,
		CarrierTrackingNumber: dto.CarrierTrackingNumber,
		CurrentLocation:       dto.CurrentLocation,
		ShippingMethod:        kernel.ShippingMethod(dto.ShippingMethod),
		OriginLocality:        dto.OriginLocality,
		DestinationLocality:   dto.DestinationLocality,
		EstimatedDelivery:     dto.EstimatedDelivery,
		Version:               dto.Version,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
		History:               history,
	})
}

func historyEntryToDomain(dto HistoryEntryDTO) (fulfillment.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return fulfillment.HistoryEntry{}, err
	}
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return fulfillment.HistoryEntry{}, err
	}
	status, err := fulfillment.StatusFromString(dto.Status)
	if err != nil {
		return fulfillment.HistoryEntry{}, err
	}

	return fulfillment.RestoreHistoryEntry(id, unitID, status, dto.Location, dto.Description, dto.OccurredAt)
}
