package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerFulfillmentsQueryHandler lists a seller's fulfillment units. Uses
// direct SQL for optimal read performance in the CQRS pattern.
type GetSellerFulfillmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerFulfillmentsQueryHandler creates a handler for seller listings.
func NewGetSellerFulfillmentsQueryHandler(db *gorm.DB) GetSellerFulfillmentsQueryHandler {
	return GetSellerFulfillmentsQueryHandler{db: db}
}

// Handle executes the listing, newest activity first.
func (h GetSellerFulfillmentsQueryHandler) Handle(
	ctx context.Context,
	query GetSellerFulfillmentsQuery,
) ([]SellerFulfillmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT 
			id, 
			order_line_id, 
			tracking_code, 
			status, 
			carrier_name, 
			destination_locality, 
			estimated_delivery, 
			updated_at 
		FROM fulfillment_units
		WHERE seller_id = ?
	`
	args := []any{query.SellerID().Bytes()}
	if query.HasStatusFilter() {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY updated_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]SellerFulfillmentResponse, 0)
	for rows.Next() {
		var unit SellerFulfillmentResponse
		var unitID, lineID uuid.UUID

		err = rows.Scan(
			&unitID,
			&lineID,
			&unit.TrackingCode,
			&unit.Status,
			&unit.CarrierName,
			&unit.DestinationLocality,
			&unit.EstimatedDelivery,
			&unit.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if unit.UnitID, err = kernel.UUIDFromBytes(unitID[:]); err != nil {
			return nil, err
		}
		if unit.OrderLineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}
