package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType accepts either case ("expense", "EXPENSE").
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(s))) {
	case TransactionTypeIncome:
		return TransactionTypeIncome, nil
	case TransactionTypeExpense:
		return TransactionTypeExpense, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is an income or expense entry. Identifiers may be assigned by
// an offline client, so ID is a plain string rather than a generated key.
//
// UserID is nil for legacy public records; those are visible to every user
// and are never written to the sync log. CreatedAt and UpdatedAt are
// maintained by the reconciler, not by GORM, because last-write-wins needs
// the client's updatedAt to survive the save.
type Transaction struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      *string         `gorm:"type:varchar(64);index" json:"userId"`
	Type        TransactionType `gorm:"type:varchar(16);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	CategoryID  *string         `gorm:"type:varchar(64);index" json:"categoryId"`
	Description string          `json:"description"`
	Tags        string          `json:"tags"`
	Date        time.Time       `gorm:"index" json:"date"`
	CreatedAt   *time.Time      `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   *time.Time      `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// IsExpense reports whether the transaction counts against budgets.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// HasCategory reports whether the transaction carries a non-blank category.
func (t *Transaction) HasCategory() bool {
	return t.CategoryID != nil && strings.TrimSpace(*t.CategoryID) != ""
}

// OwnedBy reports whether the transaction belongs to userID.
func (t *Transaction) OwnedBy(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}

// InCategory reports whether the transaction is filed under categoryID.
func (t *Transaction) InCategory(categoryID string) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}
