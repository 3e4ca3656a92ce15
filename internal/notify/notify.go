// Package notify fans sync log entries out to other devices of the same
// user. Publishing is best effort: the sync log in the database stays the
// source of truth and devices can always catch up through it.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"moneybook/internal/models"
)

// Publisher announces a newly appended sync log entry.
type Publisher interface {
	Publish(ctx context.Context, entry models.SyncLog) error
	Close() error
}

// SyncEvent is the message body sent for each sync log entry. It carries
// enough for a device to decide whether it must pull changes.
type SyncEvent struct {
	UserID     string            `json:"userId"`
	EntityID   string            `json:"entityId"`
	EntityType string            `json:"entityType"`
	Action     models.SyncAction `json:"action"`
	Version    int64             `json:"version"`
	LoggedAt   time.Time         `json:"loggedAt"`
}

// NewSyncEvent builds the event for entry.
func NewSyncEvent(entry models.SyncLog) SyncEvent {
	return SyncEvent{
		UserID:     entry.UserID,
		EntityID:   entry.EntityID,
		EntityType: entry.EntityType,
		Action:     entry.Action,
		Version:    entry.Version,
		LoggedAt:   entry.CreatedAt,
	}
}

func (e SyncEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// RoutingKey returns the topic routing key for a user's events.
func RoutingKey(userID string) string {
	return "sync." + userID
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, models.SyncLog) error { return nil }
func (Nop) Close() error                                   { return nil }
