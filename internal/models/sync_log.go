package models

// SyncAction is the kind of mutation recorded in the sync log.
type SyncAction string

const (
	SyncActionAdd    SyncAction = "ADD"
	SyncActionUpdate SyncAction = "UPDATE"
	SyncActionDelete SyncAction = "DELETE"
)

// EntityTypeTransaction tags sync log entries for transactions.
const EntityTypeTransaction = "Transaction"

// SyncLog is one append-only entry in a user's mutation history. Version is
// strictly increasing and gap-free per user, starting at 1. Payload holds
// the JSON snapshot of the entity after the mutation and is nil for deletes.
type SyncLog struct {
	Base
	EntityID   string     `gorm:"type:varchar(36);not null;index" json:"entityId"`
	UserID     string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_sync_logs_user_version" json:"userId"`
	Action     SyncAction `gorm:"type:varchar(16);not null" json:"action"`
	EntityType string     `gorm:"type:varchar(32);not null" json:"entityType"`
	Payload    *string    `gorm:"type:text" json:"payload,omitempty"`
	Version    int64      `gorm:"not null;uniqueIndex:idx_sync_logs_user_version" json:"version"`
}
