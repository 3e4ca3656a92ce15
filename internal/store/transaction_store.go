package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"moneybook/internal/models"
	"moneybook/internal/pagination"
)

type gormTransactionStore struct {
	db *gorm.DB
}

// NewTransactionStore creates a TransactionStore backed by GORM.
func NewTransactionStore(db *gorm.DB) TransactionStore {
	return &gormTransactionStore{db: db}
}

// Save inserts the transaction or overwrites the row with the same id.
func (s *gormTransactionStore) Save(tx *models.Transaction) error {
	if err := s.db.Save(tx).Error; err != nil {
		return fmt.Errorf("save transaction %s: %w", tx.ID, err)
	}
	return nil
}

func (s *gormTransactionStore) FindByID(id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ?", id).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find transaction %s: %w", id, err)
	}
	return &tx, nil
}

func (s *gormTransactionStore) ExistsByID(id string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check transaction %s: %w", id, err)
	}
	return count > 0, nil
}

func (s *gormTransactionStore) DeleteByID(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("delete transaction %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormTransactionStore) FindAll() ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.db.Order("date ASC, id ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// FindVisibleForUser returns the user's own transactions plus legacy
// records that have no owner.
func (s *gormTransactionStore) FindVisibleForUser(userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.db.Scopes(visibleTo(userID)).Order("date ASC, id ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions for user %s: %w", userID, err)
	}
	return txs, nil
}

// Query returns one page of the user's visible transactions matching filter,
// newest first, together with the total match count.
func (s *gormTransactionStore) Query(userID string, filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}).Scopes(visibleTo(userID)), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	var txs []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id ASC").
		Find(&txs).Error; err != nil {
		return nil, 0, fmt.Errorf("query transactions: %w", err)
	}
	return txs, totalItems, nil
}

// DeleteAll removes every transaction and returns what was removed.
func (s *gormTransactionStore) DeleteAll() ([]models.Transaction, error) {
	var removed []models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&removed).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Transaction{}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("clear transactions: %w", err)
	}
	return removed, nil
}

func visibleTo(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(user_id = ? OR user_id IS NULL)", userID)
	}
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("(LOWER(description) LIKE ? OR LOWER(tags) LIKE ?)", like, like)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}
