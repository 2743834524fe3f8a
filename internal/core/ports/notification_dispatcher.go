package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// NotificationKind names the event a notification reports.
type NotificationKind string

const (
	// NotificationStatusChanged is published on every accepted status
	// transition.
	NotificationStatusChanged NotificationKind = "status_changed"

	// NotificationCarrierAssigned is published when a seller hands a unit
	// to a carrier.
	NotificationCarrierAssigned NotificationKind = "carrier_assigned"

	// NotificationDeliveryOverdue is published when a unit misses its
	// delivery estimate.
	NotificationDeliveryOverdue NotificationKind = "delivery_overdue"
)

// Notification is one message for a buyer about a fulfillment unit.
type Notification struct {
	Kind         NotificationKind
	RecipientID  kernel.UUID
	UnitID       kernel.UUID
	TrackingCode fulfillment.TrackingCode
	Status       fulfillment.Status
	Description  string
}

// NotificationDispatcher publishes buyer-facing notifications. Delivery is
// best effort: callers log dispatch failures and never let them fail the
// triggering state change.
type NotificationDispatcher interface {
	// Dispatch publishes one notification.
	Dispatch(ctx context.Context, notification Notification) error
}
