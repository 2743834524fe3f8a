package fulfillment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTrackingCode(t *testing.T, raw string) fulfillment.TrackingCode {
	t.Helper()
	code, err := fulfillment.NewTrackingCode(raw)
	require.NoError(t, err)
	return code
}

func newTestUnit(t *testing.T, now time.Time) *fulfillment.Unit {
	t.Helper()
	unit, err := fulfillment.NewUnit(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustTrackingCode(t, "MKT7F3K9Q2Z"),
		kernel.ShippingStandard,
		"Istanbul",
		"Ankara",
		now.AddDate(0, 0, 4),
		now,
	)
	require.NoError(t, err)
	return unit
}

// driveTo walks a unit along legal edges until it reaches target.
func driveTo(t *testing.T, unit *fulfillment.Unit, target fulfillment.Status, now time.Time) {
	t.Helper()
	paths := map[fulfillment.Status][]fulfillment.Status{
		fulfillment.Processing:     {fulfillment.Processing},
		fulfillment.Shipped:        {fulfillment.Processing, fulfillment.Shipped},
		fulfillment.InTransit:      {fulfillment.Processing, fulfillment.Shipped, fulfillment.InTransit},
		fulfillment.OutForDelivery: {fulfillment.Processing, fulfillment.Shipped, fulfillment.InTransit, fulfillment.OutForDelivery},
		fulfillment.Delivered:      {fulfillment.Processing, fulfillment.Shipped, fulfillment.InTransit, fulfillment.OutForDelivery, fulfillment.Delivered},
	}
	for _, step := range paths[target] {
		_, err := unit.TransitionTo(step, fulfillment.TransitionDetails{}, now)
		require.NoError(t, err)
	}
}

func TestNewUnit(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("starts_pending_with_one_history_entry", func(t *testing.T) {
		unit := newTestUnit(t, now)

		assert.Equal(t, fulfillment.Pending, unit.Status())
		assert.Equal(t, 1, unit.Version())
		assert.Equal(t, now, unit.CreatedAt())
		assert.Equal(t, now, unit.UpdatedAt())

		history := unit.History()
		require.Len(t, history, 1)
		assert.Equal(t, fulfillment.Pending, history[0].Status())
		assert.Equal(t, unit.ID(), history[0].UnitID())
		assert.Equal(t, now, history[0].OccurredAt())
		assert.NotEmpty(t, history[0].Description())

		assert.Len(t, unit.UncommittedHistory(), 1)
	})

	t.Run("rejects_missing_attributes", func(t *testing.T) {
		_, err := fulfillment.NewUnit(
			kernel.UUID{},
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustTrackingCode(t, "MKT7F3K9Q2Z"),
			kernel.ShippingStandard,
			"",
			"Ankara",
			now.AddDate(0, 0, 4),
			now,
		)
		require.Error(t, err)
	})
}

func TestUnit_TransitionTo(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("appends_one_history_entry_per_transition", func(t *testing.T) {
		unit := newTestUnit(t, now)
		later := now.Add(2 * time.Hour)

		entry, err := unit.TransitionTo(fulfillment.Processing, fulfillment.TransitionDetails{}, later)
		require.NoError(t, err)

		assert.Equal(t, fulfillment.Processing, unit.Status())
		assert.Equal(t, fulfillment.Processing, entry.Status())
		assert.Equal(t, later, unit.UpdatedAt())
		assert.Len(t, unit.History(), 2)
	})

	t.Run("records_details_on_the_unit_and_the_entry", func(t *testing.T) {
		unit := newTestUnit(t, now)
		driveTo(t, unit, fulfillment.Shipped, now)

		entry, err := unit.TransitionTo(fulfillment.InTransit, fulfillment.TransitionDetails{
			Location:    "Bolu transfer hub",
			Description: "Scanned at regional hub",
		}, now.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, "Bolu transfer hub", unit.CurrentLocation())
		assert.Equal(t, "Bolu transfer hub", entry.Location())
		assert.Equal(t, "Scanned at regional hub", entry.Description())
	})

	t.Run("falls_back_to_the_stock_description", func(t *testing.T) {
		unit := newTestUnit(t, now)

		entry, err := unit.TransitionTo(fulfillment.Processing, fulfillment.TransitionDetails{}, now)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.DefaultDescription(fulfillment.Processing), entry.Description())
	})

	t.Run("illegal_edge_leaves_the_unit_unchanged", func(t *testing.T) {
		unit := newTestUnit(t, now)
		driveTo(t, unit, fulfillment.Delivered, now)
		historyBefore := len(unit.History())

		_, err := unit.TransitionTo(fulfillment.Processing, fulfillment.TransitionDetails{}, now.Add(time.Hour))
		require.Error(t, err)
		require.ErrorIs(t, err, fulfillment.ErrInvalidTransition)

		assert.Equal(t, fulfillment.Delivered, unit.Status())
		assert.Len(t, unit.History(), historyBefore)
	})

	t.Run("unconstructed_unit_is_rejected", func(t *testing.T) {
		var unit fulfillment.Unit
		_, err := unit.TransitionTo(fulfillment.Processing, fulfillment.TransitionDetails{}, now)
		require.ErrorIs(t, err, fulfillment.ErrUnitIsNotConstructed)
	})
}

func TestUnit_AssignCarrier(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("pending_unit_moves_to_shipped_with_two_history_entries", func(t *testing.T) {
		unit := newTestUnit(t, now)

		entry, transitioned, err := unit.AssignCarrier("Aras Kargo", "AR123", now.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, transitioned)

		assert.Equal(t, fulfillment.Shipped, unit.Status())
		assert.Equal(t, "Aras Kargo", unit.CarrierName())
		assert.Equal(t, "AR123", unit.CarrierTrackingNumber())
		assert.Len(t, unit.History(), 2)
	})

	t.Run("processing_unit_moves_to_shipped", func(t *testing.T) {
		unit := newTestUnit(t, now)
		driveTo(t, unit, fulfillment.Processing, now)

		_, transitioned, err := unit.AssignCarrier("MNG Kargo", "", now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, transitioned)
		assert.Equal(t, fulfillment.Shipped, unit.Status())
	})

	t.Run("moving_unit_keeps_its_status", func(t *testing.T) {
		unit := newTestUnit(t, now)
		driveTo(t, unit, fulfillment.InTransit, now)
		historyBefore := len(unit.History())

		entry, transitioned, err := unit.AssignCarrier("Yurtici Kargo", "YK987", now.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, entry)
		assert.False(t, transitioned)

		assert.Equal(t, fulfillment.InTransit, unit.Status())
		assert.Equal(t, "Yurtici Kargo", unit.CarrierName())
		assert.Equal(t, "YK987", unit.CarrierTrackingNumber())
		assert.Len(t, unit.History(), historyBefore)
	})

	t.Run("terminal_unit_rejects_assignment", func(t *testing.T) {
		unit := newTestUnit(t, now)
		driveTo(t, unit, fulfillment.Delivered, now)

		_, _, err := unit.AssignCarrier("Aras Kargo", "AR123", now.Add(time.Hour))
		require.Error(t, err)
		require.ErrorIs(t, err, fulfillment.ErrInvalidTransition)
		assert.Equal(t, fulfillment.Delivered, unit.Status())
	})

	t.Run("carrier_name_is_required", func(t *testing.T) {
		unit := newTestUnit(t, now)
		_, _, err := unit.AssignCarrier("", "AR123", now)
		require.Error(t, err)
	})
}

func TestRestoreUnit(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	snapshotOf := func(t *testing.T, unit *fulfillment.Unit) fulfillment.UnitSnapshot {
		t.Helper()
		return fulfillment.UnitSnapshot{
			ID:                  unit.ID(),
			OrderLineID:         unit.OrderLineID(),
			SellerID:            unit.SellerID(),
			Status:              unit.Status(),
			TrackingCode:        unit.TrackingCode(),
			CarrierName:         unit.CarrierName(),
			CurrentLocation:     unit.CurrentLocation(),
			ShippingMethod:      unit.ShippingMethod(),
			OriginLocality:      unit.OriginLocality(),
			DestinationLocality: unit.DestinationLocality(),
			EstimatedDelivery:   unit.EstimatedDelivery(),
			Version:             unit.Version(),
			CreatedAt:           unit.CreatedAt(),
			UpdatedAt:           unit.UpdatedAt(),
			History:             unit.History(),
		}
	}

	t.Run("round_trips_the_aggregate", func(t *testing.T) {
		unit := newTestUnit(t, now)
		driveTo(t, unit, fulfillment.Shipped, now)

		restored, err := fulfillment.RestoreUnit(snapshotOf(t, unit))
		require.NoError(t, err)

		assert.True(t, restored.ID().IsEqual(unit.ID()))
		assert.Equal(t, unit.Status(), restored.Status())
		assert.Len(t, restored.History(), len(unit.History()))
		assert.Empty(t, restored.UncommittedHistory())
	})

	t.Run("restored_unit_tracks_only_new_history_as_uncommitted", func(t *testing.T) {
		unit := newTestUnit(t, now)
		restored, err := fulfillment.RestoreUnit(snapshotOf(t, unit))
		require.NoError(t, err)

		_, err = restored.TransitionTo(fulfillment.Processing, fulfillment.TransitionDetails{}, now.Add(time.Hour))
		require.NoError(t, err)

		uncommitted := restored.UncommittedHistory()
		require.Len(t, uncommitted, 1)
		assert.Equal(t, fulfillment.Processing, uncommitted[0].Status())
	})

	t.Run("mutation_bumps_version_once_per_persistence_cycle", func(t *testing.T) {
		unit := newTestUnit(t, now)
		restored, err := fulfillment.RestoreUnit(snapshotOf(t, unit))
		require.NoError(t, err)
		require.Equal(t, 1, restored.PersistedVersion())

		_, err = restored.TransitionTo(fulfillment.Processing, fulfillment.TransitionDetails{}, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, restored.Version())

		_, err = restored.TransitionTo(fulfillment.Shipped, fulfillment.TransitionDetails{}, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, restored.Version())
		assert.Equal(t, 1, restored.PersistedVersion())
	})

	t.Run("rejects_history_out_of_sync_with_status", func(t *testing.T) {
		unit := newTestUnit(t, now)
		snapshot := snapshotOf(t, unit)
		snapshot.Status = fulfillment.Shipped

		_, err := fulfillment.RestoreUnit(snapshot)
		require.ErrorIs(t, err, fulfillment.ErrHistoryOutOfSync)
	})
}

func TestUnit_IsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	unit := newTestUnit(t, now)

	assert.False(t, unit.IsOverdue(now))
	assert.False(t, unit.IsOverdue(unit.EstimatedDelivery()))
	assert.True(t, unit.IsOverdue(unit.EstimatedDelivery().Add(time.Hour)))

	driveTo(t, unit, fulfillment.Delivered, now)
	assert.False(t, unit.IsOverdue(unit.EstimatedDelivery().Add(time.Hour)))
}

func TestUnit_Reschedule(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	unit := newTestUnit(t, now)

	newEstimate := now.AddDate(0, 0, 2)
	require.NoError(t, unit.Reschedule(newEstimate, now.Add(time.Minute)))
	assert.Equal(t, newEstimate, unit.EstimatedDelivery())
	assert.Equal(t, now.Add(time.Minute), unit.UpdatedAt())
}
