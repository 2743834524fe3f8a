package queries

import (
	"context"
	"log/slog"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackingSnapshotCache caches public tracking views keyed by tracking code.
// Get returns (nil, nil) on a miss. The cache is an optimization only:
// handlers treat every cache error as a miss.
type TrackingSnapshotCache interface {
	Get(ctx context.Context, code string) (*TrackByCodeQueryResponse, error)
	Set(ctx context.Context, code string, snapshot TrackByCodeQueryResponse) error
}

// TrackByCodeQueryHandler serves the public tracking lookup. Reads go through
// a short-lived cache first; on a miss the view is assembled from the
// database with direct SQL and written back to the cache.
type TrackByCodeQueryHandler struct {
	db     *gorm.DB
	cache  TrackingSnapshotCache
	logger *slog.Logger
}

// NewTrackByCodeQueryHandler creates a handler for public tracking lookups.
// The cache may be nil, which disables caching.
func NewTrackByCodeQueryHandler(db *gorm.DB, cache TrackingSnapshotCache, logger *slog.Logger) TrackByCodeQueryHandler {
	return TrackByCodeQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the lookup. Unknown codes fail with
// errs.ObjectNotFoundError.
func (h TrackByCodeQueryHandler) Handle(
	ctx context.Context,
	query TrackByCodeQuery,
) (TrackByCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackByCodeQueryResponse{}, err
	}

	code := query.Code().String()

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, code)
		if err != nil {
			h.logger.WarnContext(ctx, "tracking cache read failed", "error", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	response := TrackByCodeQueryResponse{History: make([]TrackingHistoryEntryResponse, 0)}

	row := h.db.WithContext(ctx).Raw(`
		SELECT 
			tracking_code, 
			status, 
			carrier_name, 
			current_location, 
			destination_locality, 
			estimated_delivery 
		FROM fulfillment_units
		WHERE tracking_code = ?
	`, code).Row()

	err := row.Scan(
		&response.TrackingCode,
		&response.Status,
		&response.CarrierName,
		&response.CurrentLocation,
		&response.DestinationLocality,
		&response.EstimatedDelivery,
	)
	if err != nil {
		return TrackByCodeQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("trackingCode", code, err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			h.status, 
			h.location, 
			h.description, 
			h.occurred_at 
		FROM fulfillment_status_history h
		JOIN fulfillment_units u ON u.id = h.unit_id
		WHERE u.tracking_code = ?
		ORDER BY h.occurred_at, h.id
	`, code).Rows()
	if err != nil {
		return TrackByCodeQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackingHistoryEntryResponse
		if err := rows.Scan(&entry.Status, &entry.Location, &entry.Description, &entry.OccurredAt); err != nil {
			return TrackByCodeQueryResponse{}, err
		}
		response.History = append(response.History, entry)
	}
	if err := rows.Err(); err != nil {
		return TrackByCodeQueryResponse{}, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, code, response); err != nil {
			h.logger.WarnContext(ctx, "tracking cache write failed", "error", err)
		}
	}

	return response, nil
}
