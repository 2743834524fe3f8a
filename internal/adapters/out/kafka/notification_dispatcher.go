// Package kafka publishes buyer notifications to a Kafka topic. Consumers
// (e-mail, push, SMS) are separate services; this adapter only guarantees the
// event lands on the topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// notificationMessage is the wire payload published per notification.
type notificationMessage struct {
	Kind         string    `json:"kind"`
	RecipientID  string    `json:"recipientId"`
	UnitID       string    `json:"unitId"`
	TrackingCode string    `json:"trackingCode"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NotificationDispatcher implements ports.NotificationDispatcher on top of a
// Kafka writer. Messages are keyed by recipient so one buyer's notifications
// stay ordered within a partition.
type NotificationDispatcher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher publishing to the given
// topic. The writer is created with sane defaults for a low-volume
// notification stream; Close must be called on shutdown.
func NewNotificationDispatcher(brokers []string, topic string, logger *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// Dispatch publishes one notification.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		Kind:         string(notification.Kind),
		RecipientID:  notification.RecipientID.String(),
		UnitID:       notification.UnitID.String(),
		TrackingCode: notification.TrackingCode.String(),
		Status:       notification.Status.String(),
		Description:  notification.Description,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.RecipientID.String()),
		Value: payload,
	})
	if err != nil {
		return err
	}

	d.logger.DebugContext(ctx, "notification published",
		"kind", string(notification.Kind),
		"unitId", notification.UnitID.String(),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (d *NotificationDispatcher) Close() error {
	return d.writer.Close()
}
