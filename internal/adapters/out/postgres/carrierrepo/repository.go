package carrierrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM. The catalog
// is reference data, so the repository carries no aggregate tracking.
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// Add registers a carrier in the catalog.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByName retrieves a carrier by its unique display name.
func (r *GormCarrierRepository) GetByName(ctx context.Context, name string) (*carrier.Carrier, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("carrier name")
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrierName", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog sorted by name.
func (r *GormCarrierRepository) GetAll(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, aggregate)
	}
	return carriers, nil
}
