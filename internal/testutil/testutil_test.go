package testutil_test

import (
	"errors"
	"testing"
	"time"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
	"moneybook/internal/period"
	"moneybook/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"transactions", "sync_logs", "documents"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestTransaction(t, first, "user-1", "food", models.TransactionTypeExpense, "10", testutil.Day(2024, time.January, 1))

	var count int64
	second.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("expected second database to be empty, got %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	tx := testutil.CreateTestTransaction(t, db, "user-1", "", models.TransactionTypeIncome, "1000", testutil.Day(2024, time.March, 3))
	if tx.CategoryID != nil {
		t.Errorf("expected nil category, got %v", *tx.CategoryID)
	}
	if !tx.OwnedBy("user-1") {
		t.Error("expected transaction to be owned by user-1")
	}

	b := testutil.NewTestBudget("user-1", "", "300", period.NewDate(2024, time.January, 1), period.Days, 30)
	if !b.IsTotalBudget() {
		t.Error("expected total budget")
	}
	if b.TotalDays() != 30 {
		t.Errorf("expected 30 days, got %d", b.TotalDays())
	}
}

func TestMemorySnapshotStore(t *testing.T) {
	s := testutil.NewMemorySnapshotStore()
	s.Put("a.json", "[]")
	if s.Writes() != 0 {
		t.Errorf("seeding should not count as a write")
	}
	if err := s.WriteFile("a.json", "[{}]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, ok, _ := s.ReadFile("a.json")
	if !ok || content != "[{}]" {
		t.Errorf("unexpected content %q", content)
	}

	s.WriteErr = errors.New("disk full")
	if err := s.WriteFile("a.json", "x"); err == nil {
		t.Error("expected injected error")
	}
	if s.Writes() != 1 {
		t.Errorf("expected 1 write, got %d", s.Writes())
	}
}

func TestAssertAppError(t *testing.T) {
	err := apperrors.WithMessage(apperrors.ErrBudgetNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
