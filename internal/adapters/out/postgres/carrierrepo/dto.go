// Package carrierrepo provides persistence for the carrier catalog.
package carrierrepo

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for catalog carriers.
type CarrierDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"uniqueIndex"`
	EstimatedDays int
}

// TableName specifies the database table name for carriers.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		EstimatedDays: aggregate.EstimatedDays(),
	}
}

// toDomain converts a database DTO to a carrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return carrier.RestoreCarrier(id, dto.Name, dto.EstimatedDays)
}
