package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneybook/internal/models"
	"moneybook/internal/period"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}

// Day returns midnight UTC of the given day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewTestTransaction builds an unsaved transaction with a unique id. An
// empty userID or categoryID leaves the field nil.
func NewTestTransaction(userID, categoryID string, txType models.TransactionType, amount string, date time.Time) models.Transaction {
	tx := models.Transaction{
		ID:          fmt.Sprintf("tx-%d", nextID()),
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Description: "test transaction",
		Date:        date,
	}
	if userID != "" {
		tx.UserID = StrPtr(userID)
	}
	if categoryID != "" {
		tx.CategoryID = StrPtr(categoryID)
	}
	return tx
}

// CreateTestTransaction saves a transaction built by NewTestTransaction.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID string, txType models.TransactionType, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := NewTestTransaction(userID, categoryID, txType, amount, date)
	now := time.Now().UTC()
	tx.CreatedAt = &now
	tx.UpdatedAt = &now
	if err := db.Create(&tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return &tx
}

// NewTestBudget builds a period budget. An empty categoryID makes it a
// total budget.
func NewTestBudget(userID, categoryID, amount string, start period.Date, unit period.Unit, count int) models.Budget {
	b := models.Budget{
		UserID:      userID,
		Amount:      decimal.RequireFromString(amount),
		Year:        start.Year(),
		Month:       int(start.Month()),
		PeriodUnit:  unit,
		PeriodCount: count,
	}
	if !start.IsZero() {
		b.StartDate = &start
	}
	if categoryID != "" {
		b.CategoryID = StrPtr(categoryID)
	}
	return b
}
