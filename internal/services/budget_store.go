package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"moneybook/internal/clock"
	"moneybook/internal/logger"
	"moneybook/internal/models"
	"moneybook/internal/period"
	"moneybook/internal/store"
	"moneybook/internal/uuid"
)

// BudgetsDocument is the snapshot name holding every budget.
const BudgetsDocument = "budgets.json"

// BudgetStore owns the in-memory budget collection and its snapshot. One
// mutex covers every read-modify-write-persist sequence because each save
// replaces the whole document.
type BudgetStore struct {
	mu        sync.Mutex
	budgets   []models.Budget
	snapshots store.SnapshotStore
	clock     clock.Clock
}

// NewBudgetStore loads the current snapshot and returns the store.
func NewBudgetStore(snapshots store.SnapshotStore, clk clock.Clock) *BudgetStore {
	s := &BudgetStore{snapshots: snapshots, clock: clk}
	s.load()
	return s
}

// load replaces the collection with the snapshot. A missing or blank
// document means no budgets; an unreadable one is logged and treated the
// same way.
func (s *BudgetStore) load() {
	s.budgets = nil

	content, ok, err := s.snapshots.ReadFile(BudgetsDocument)
	if err != nil {
		logger.Get().Errorw("failed to read budgets snapshot", "error", err)
		return
	}
	if !ok || strings.TrimSpace(content) == "" {
		return
	}

	var budgets []models.Budget
	if err := json.Unmarshal([]byte(content), &budgets); err != nil {
		logger.Get().Errorw("failed to parse budgets snapshot", "error", err)
		return
	}
	s.budgets = budgets
}

// save writes the whole collection. Callers hold s.mu. On failure the
// in-memory change stays applied.
func (s *BudgetStore) save() error {
	budgets := s.budgets
	if budgets == nil {
		budgets = []models.Budget{}
	}
	data, err := json.MarshalIndent(budgets, "", "  ")
	if err != nil {
		logger.Get().Errorw("failed to encode budgets snapshot", "error", err)
		return fmt.Errorf("encode budgets: %w", err)
	}
	if err := s.snapshots.WriteFile(BudgetsDocument, string(data)); err != nil {
		logger.Get().Errorw("failed to save budgets snapshot", "error", err, "budgets", len(budgets))
		return err
	}
	return nil
}

// Add assigns an id and timestamps when missing, appends the budget and
// persists. The returned error only reports a failed save.
func (s *BudgetStore) Add(b models.Budget) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(b)
}

func (s *BudgetStore) addLocked(b models.Budget) (models.Budget, error) {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	if b.PeriodCount == 0 {
		b.PeriodCount = 1
	}
	now := s.clock.Now().UTC()
	if b.CreatedAt == nil {
		b.CreatedAt = &now
	}
	b.UpdatedAt = &now

	s.budgets = append(s.budgets, b)
	return b, s.save()
}

// Update replaces the stored budget with the same id, keeping its owner and
// creation time. It returns false when the id is unknown.
func (s *BudgetStore) Update(b models.Budget) (models.Budget, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(b.ID)
	if i < 0 {
		return models.Budget{}, false, nil
	}

	existing := s.budgets[i]
	b.UserID = existing.UserID
	b.CreatedAt = existing.CreatedAt
	if b.PeriodCount == 0 {
		b.PeriodCount = 1
	}
	now := s.clock.Now().UTC()
	b.UpdatedAt = &now

	s.budgets[i] = b
	return b, true, s.save()
}

// Delete removes the budget. An unknown id returns false without touching
// the snapshot.
func (s *BudgetStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
	return true, s.save()
}

// SetMonthlyBudget updates the amount of the (user, category, year, month)
// budget, or creates it. A nil category targets the total budget.
func (s *BudgetStore) SetMonthlyBudget(userID string, categoryID *string, amount decimal.Decimal, year, month int) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		b := &s.budgets[i]
		if b.UserID == userID && b.MatchesMonth(year, month) && sameCategory(b.CategoryID, categoryID) {
			b.Amount = amount
			now := s.clock.Now().UTC()
			b.UpdatedAt = &now
			return *b, s.save()
		}
	}
	return s.addLocked(models.NewMonthlyBudget(userID, categoryID, amount, year, month))
}

func (s *BudgetStore) GetByID(id string) (models.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.budgets[i], true
	}
	return models.Budget{}, false
}

// TotalBudget returns the user's all-category budget for a month.
func (s *BudgetStore) TotalBudget(userID string, year, month int) (models.Budget, bool) {
	return s.first(func(b *models.Budget) bool {
		return b.UserID == userID && b.IsTotalBudget() && b.MatchesMonth(year, month)
	})
}

// CategoryBudget returns the user's budget for one category and month.
func (s *BudgetStore) CategoryBudget(userID, categoryID string, year, month int) (models.Budget, bool) {
	return s.first(func(b *models.Budget) bool {
		return b.UserID == userID && b.CategoryID != nil && *b.CategoryID == categoryID && b.MatchesMonth(year, month)
	})
}

// MonthlyBudget picks the category budget, or the total budget when
// categoryID is nil.
func (s *BudgetStore) MonthlyBudget(userID string, categoryID *string, year, month int) (models.Budget, bool) {
	if categoryID == nil {
		return s.TotalBudget(userID, year, month)
	}
	return s.CategoryBudget(userID, *categoryID, year, month)
}

func (s *BudgetStore) ByUser(userID string) []models.Budget {
	return s.filter(func(b *models.Budget) bool { return b.UserID == userID })
}

func (s *BudgetStore) ByMonth(userID string, year, month int) []models.Budget {
	return s.filter(func(b *models.Budget) bool {
		return b.UserID == userID && b.MatchesMonth(year, month)
	})
}

// FindActive returns the user's budgets whose period contains at. A nil
// categoryID matches budgets of any category; otherwise only budgets filed
// under that exact category match.
func (s *BudgetStore) FindActive(userID string, categoryID *string, at period.Date) []models.Budget {
	return s.filter(func(b *models.Budget) bool {
		if b.UserID != userID {
			return false
		}
		if categoryID != nil && (b.CategoryID == nil || *b.CategoryID != *categoryID) {
			return false
		}
		return b.ActiveOn(at)
	})
}

func (s *BudgetStore) first(match func(*models.Budget) bool) (models.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if match(&s.budgets[i]) {
			return s.budgets[i], true
		}
	}
	return models.Budget{}, false
}

func (s *BudgetStore) filter(match func(*models.Budget) bool) []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Budget{}
	for i := range s.budgets {
		if match(&s.budgets[i]) {
			out = append(out, s.budgets[i])
		}
	}
	return out
}

func (s *BudgetStore) indexOf(id string) int {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			return i
		}
	}
	return -1
}

func sameCategory(a, b *string) bool {
	if a == nil || *a == "" {
		return b == nil || *b == ""
	}
	return b != nil && *a == *b
}
