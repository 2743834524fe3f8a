package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerFulfillmentsQueryHandler lists a buyer's fulfillment units across
// all their orders. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetBuyerFulfillmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerFulfillmentsQueryHandler creates a handler for buyer listings.
func NewGetBuyerFulfillmentsQueryHandler(db *gorm.DB) GetBuyerFulfillmentsQueryHandler {
	return GetBuyerFulfillmentsQueryHandler{db: db}
}

// Handle executes the listing, newest activity first.
func (h GetBuyerFulfillmentsQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerFulfillmentsQuery,
) ([]BuyerFulfillmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	units := make([]BuyerFulfillmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			u.id, 
			o.id, 
			u.order_line_id, 
			u.tracking_code, 
			u.status, 
			u.carrier_name, 
			u.estimated_delivery, 
			u.updated_at 
		FROM fulfillment_units u
		JOIN order_lines l ON l.id = u.order_line_id
		JOIN orders o ON o.id = l.order_id
		WHERE o.buyer_id = ?
		ORDER BY u.updated_at DESC, u.id
	`, query.BuyerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var unit BuyerFulfillmentResponse
		var unitID, orderID, lineID uuid.UUID

		err = rows.Scan(
			&unitID,
			&orderID,
			&lineID,
			&unit.TrackingCode,
			&unit.Status,
			&unit.CarrierName,
			&unit.EstimatedDelivery,
			&unit.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if unit.UnitID, err = kernel.UUIDFromBytes(unitID[:]); err != nil {
			return nil, err
		}
		if unit.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
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
