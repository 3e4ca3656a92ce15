package services

import (
	"context"
	"encoding/json"
	"sync"

	"moneybook/internal/logger"
	"moneybook/internal/models"
	"moneybook/internal/notify"
	"moneybook/internal/store"
)

// syncLogService handles sync log recording.
type syncLogService struct {
	store     store.SyncLogStore
	publisher notify.Publisher

	// One mutex per user serializes version assignment within the process.
	locks sync.Map
}

// NewSyncLogService creates a new SyncLogServicer. A nil publisher disables
// fan-out.
func NewSyncLogService(s store.SyncLogStore, publisher notify.Publisher) SyncLogServicer {
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &syncLogService{store: s, publisher: publisher}
}

// Record appends an entry at the user's next version. Records without an
// owner are not tracked. Errors are logged but never propagate to avoid
// disrupting the main operation.
func (s *syncLogService) Record(tx *models.Transaction, action models.SyncAction) {
	if tx == nil || tx.UserID == nil {
		return
	}
	userID := *tx.UserID

	entry := models.SyncLog{
		EntityID:   tx.ID,
		UserID:     userID,
		Action:     action,
		EntityType: models.EntityTypeTransaction,
	}
	if action != models.SyncActionDelete {
		data, err := json.Marshal(tx)
		if err != nil {
			logger.Get().Errorw("failed to marshal sync log payload", "error", err, "entity_id", tx.ID)
		} else {
			payload := string(data)
			entry.Payload = &payload
		}
	}

	mu := s.userLock(userID)
	mu.Lock()
	saved, err := s.store.Append(entry)
	mu.Unlock()
	if err != nil {
		logger.Get().Errorw("failed to append sync log entry",
			"error", err,
			"user_id", userID,
			"entity_id", tx.ID,
			"action", action,
		)
		return
	}

	if err := s.publisher.Publish(context.Background(), *saved); err != nil {
		logger.Get().Warnw("failed to publish sync event",
			"error", err,
			"user_id", userID,
			"version", saved.Version,
		)
	}
}

func (s *syncLogService) MaxVersion(userID string) (int64, error) {
	return s.store.MaxVersionForUser(userID)
}

// ChangesSince returns the user's entries after afterVersion, oldest first.
func (s *syncLogService) ChangesSince(userID string, afterVersion int64, limit int) ([]models.SyncLog, error) {
	return s.store.ListSince(userID, afterVersion, limit)
}

func (s *syncLogService) userLock(userID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
