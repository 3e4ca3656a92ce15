// Package store holds the persistence boundary of the core: transactions,
// the per-user sync log and whole-document snapshots. Every method returns
// an error instead of logging; callers decide how to degrade.
package store

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"moneybook/internal/models"
	"moneybook/internal/pagination"
)

// ErrNotFound is returned when a lookup by key matches nothing.
var ErrNotFound = errors.New("store: record not found")

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	Keyword    string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// TransactionStore persists transactions.
type TransactionStore interface {
	Save(tx *models.Transaction) error
	FindByID(id string) (*models.Transaction, error)
	ExistsByID(id string) (bool, error)
	DeleteByID(id string) error
	FindAll() ([]models.Transaction, error)
	FindVisibleForUser(userID string) ([]models.Transaction, error)
	Query(userID string, filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error)
	DeleteAll() ([]models.Transaction, error)
}

// SyncLogStore persists the append-only sync log.
type SyncLogStore interface {
	// Append assigns the next version for entry.UserID and inserts the
	// entry atomically.
	Append(entry models.SyncLog) (*models.SyncLog, error)
	MaxVersionForUser(userID string) (int64, error)
	ListSince(userID string, afterVersion int64, limit int) ([]models.SyncLog, error)
}

// SnapshotStore reads and replaces whole named documents.
type SnapshotStore interface {
	// ReadFile returns the document content and whether it exists.
	ReadFile(name string) (string, bool, error)
	// WriteFile replaces the document. Readers never observe a partial write.
	WriteFile(name, content string) error
}
