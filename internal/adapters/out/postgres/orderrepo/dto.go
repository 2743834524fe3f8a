// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are the upstream checkout facts fulfillment
// tracks; this package reads them and writes them only for seeding and tests.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
// Monetary amounts are stored in minor units.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID             uuid.UUID `gorm:"type:uuid;index"`
	ShippingMethod      string    `gorm:"type:varchar(16)"`
	DestinationLocality string
	ShippingCost        int64
	Discount            int64
	Total               int64
	CreatedAt           time.Time
	Lines               []LineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row.
type LineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	SellerID       uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	Quantity       int
	UnitPrice      int64
	Total          int64
	OriginLocality string
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			ID:             line.ID().Bytes(),
			OrderID:        line.OrderID().Bytes(),
			SellerID:       line.SellerID().Bytes(),
			ProductID:      line.ProductID().Bytes(),
			Quantity:       line.Quantity(),
			UnitPrice:      line.UnitPrice().Amount(),
			Total:          line.Total().Amount(),
			OriginLocality: line.OriginLocality(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		BuyerID:             aggregate.BuyerID().Bytes(),
		ShippingMethod:      aggregate.ShippingMethod().String(),
		DestinationLocality: aggregate.DestinationLocality(),
		ShippingCost:        aggregate.ShippingCost().Amount(),
		Discount:            aggregate.Discount().Amount(),
		Total:               aggregate.Total().Amount(),
		CreatedAt:           aggregate.CreatedAt(),
		Lines:               lineDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate, validating the
// stored invariants via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		buyerID,
		kernel.ShippingMethod(dto.ShippingMethod),
		dto.DestinationLocality,
		shippingCost,
		discount,
		total,
		dto.CreatedAt,
		lines,
	)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Line{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return order.Line{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(id, orderID, sellerID, productID, dto.Quantity, unitPrice, total, dto.OriginLocality)
}
