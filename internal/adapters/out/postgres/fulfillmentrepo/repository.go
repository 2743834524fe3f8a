package fulfillmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// terminalStatuses are excluded from overdue scans.
var terminalStatuses = []string{
	fulfillment.Delivered.String(),
	fulfillment.Failed.String(),
	fulfillment.Returned.String(),
}

// GormFulfillmentRepository implements FulfillmentRepository using GORM.
// Unit rows are guarded by an optimistic version column; history rows are
// append-only and written in the same transaction as the unit they belong to.
type GormFulfillmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFulfillmentRepository creates a new GORM fulfillment repository.
func NewGormFulfillmentRepository(db *gorm.DB, tracker aggregateTracker) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a batch of new units with their seeded history entries.
func (r *GormFulfillmentRepository) Add(ctx context.Context, units []*fulfillment.Unit) error {
	if len(units) == 0 {
		return errs.NewValueIsRequiredError("units")
	}

	dtos := make([]UnitDTO, 0, len(units))
	var historyDTOs []HistoryEntryDTO
	for _, unit := range units {
		if err := unit.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(unit))
		historyDTOs = append(historyDTOs, historyFromDomain(unit.UncommittedHistory())...)
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&historyDTOs).Error; err != nil {
		return err
	}

	for _, unit := range units {
		r.tracker.TrackAggregate(unit.ID(), unit)
	}
	return nil
}

// Update saves an existing unit and appends its uncommitted history entries.
// The write is guarded by the version the unit was restored with: if another
// writer committed in between, nothing is written and the call fails with
// errs.VersionIsInvalidError.
func (r *GormFulfillmentRepository) Update(ctx context.Context, unit *fulfillment.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	dto := fromDomain(unit)
	result := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("id = ? AND version = ?", dto.ID, unit.PersistedVersion()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"unitVersion",
			fmt.Errorf("unit %s was modified concurrently (expected version %d)",
				unit.ID().String(), unit.PersistedVersion()),
		)
	}

	if uncommitted := unit.UncommittedHistory(); len(uncommitted) > 0 {
		historyDTOs := historyFromDomain(uncommitted)
		if err := r.db.WithContext(ctx).Create(&historyDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(unit.ID(), unit)
	return nil
}

// Get retrieves a unit by ID, history included.
func (r *GormFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Unit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unitId", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetByTrackingCode retrieves a unit by its public tracking code, history
// included.
func (r *GormFulfillmentRepository) GetByTrackingCode(
	ctx context.Context,
	code fulfillment.TrackingCode,
) (*fulfillment.Unit, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", code.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// ExistsTrackingCode reports whether a tracking code is already assigned.
func (r *GormFulfillmentRepository) ExistsTrackingCode(
	ctx context.Context,
	code fulfillment.TrackingCode,
) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("tracking_code = ?", code.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetOverdue retrieves non-terminal units whose delivery estimate lies before
// asOf, oldest estimate first.
func (r *GormFulfillmentRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]*fulfillment.Unit, error) {
	var dtos []UnitDTO
	err := r.db.WithContext(ctx).
		Where("estimated_delivery < ? AND status NOT IN ?", asOf, terminalStatuses).
		Order("estimated_delivery").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	units := make([]*fulfillment.Unit, 0, len(dtos))
	for _, dto := range dtos {
		unit, restoreErr := r.restore(ctx, dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		units = append(units, unit)
	}
	return units, nil
}

func (r *GormFulfillmentRepository) restore(ctx context.Context, dto UnitDTO) (*fulfillment.Unit, error) {
	var historyDTOs []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", dto.ID).
		Order("occurred_at, id").
		Find(&historyDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, historyDTOs)
}
