package store

import (
	"fmt"

	"gorm.io/gorm"

	"moneybook/internal/models"
)

type gormSyncLogStore struct {
	db *gorm.DB
}

// NewSyncLogStore creates a SyncLogStore backed by GORM.
func NewSyncLogStore(db *gorm.DB) SyncLogStore {
	return &gormSyncLogStore{db: db}
}

// Append reads the user's current maximum version and inserts the entry at
// max+1 inside one database transaction. The unique (user_id, version)
// index rejects a concurrent writer that read the same maximum.
func (s *gormSyncLogStore) Append(entry models.SyncLog) (*models.SyncLog, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		current, err := maxVersion(tx, entry.UserID)
		if err != nil {
			return err
		}
		entry.Version = current + 1
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("append sync log for user %s: %w", entry.UserID, err)
	}
	return &entry, nil
}

// MaxVersionForUser returns the highest version logged for the user, or 0.
func (s *gormSyncLogStore) MaxVersionForUser(userID string) (int64, error) {
	v, err := maxVersion(s.db, userID)
	if err != nil {
		return 0, fmt.Errorf("max sync version for user %s: %w", userID, err)
	}
	return v, nil
}

// ListSince returns entries with version > afterVersion in ascending order.
// A non-positive limit returns everything.
func (s *gormSyncLogStore) ListSince(userID string, afterVersion int64, limit int) ([]models.SyncLog, error) {
	q := s.db.Where("user_id = ? AND version > ?", userID, afterVersion).Order("version ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []models.SyncLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list sync log for user %s: %w", userID, err)
	}
	return entries, nil
}

func maxVersion(db *gorm.DB, userID string) (int64, error) {
	var v int64
	err := db.Model(&models.SyncLog{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&v).Error
	return v, err
}
