package services

import (
	"time"

	"github.com/shopspring/decimal"

	"moneybook/internal/clock"
	apperrors "moneybook/internal/errors"
	"moneybook/internal/logger"
	"moneybook/internal/models"
	"moneybook/internal/period"
	"moneybook/internal/store"
)

// budgetService handles budget bookkeeping and the two accounting paths:
// period statistics and calendar-month usage.
type budgetService struct {
	budgets      *BudgetStore
	transactions store.TransactionStore
	clock        clock.Clock
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(budgets *BudgetStore, transactions store.TransactionStore, clk clock.Clock) BudgetServicer {
	return &budgetService{
		budgets:      budgets,
		transactions: transactions,
		clock:        clk,
	}
}

func (s *budgetService) today() period.Date {
	return period.DateOf(s.clock.Now())
}

// CreateBudget validates and stores a new budget.
func (s *budgetService) CreateBudget(b models.Budget) (*models.Budget, error) {
	if err := validateBudget(&b); err != nil {
		return nil, err
	}
	b.ID = ""
	saved, err := s.budgets.Add(b)
	if err != nil {
		return &saved, apperrors.Wrap(apperrors.ErrSnapshotNotSaved, err)
	}
	return &saved, nil
}

// GetBudget returns the budget or BUDGET_NOT_FOUND.
func (s *budgetService) GetBudget(id string) (*models.Budget, error) {
	b, ok := s.budgets.GetByID(id)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	return &b, nil
}

// ListBudgets returns the user's budgets, narrowed to one month when both
// year and month are set.
func (s *budgetService) ListBudgets(userID string, year, month int) []models.Budget {
	if year > 0 && month > 0 {
		return s.budgets.ByMonth(userID, year, month)
	}
	return s.budgets.ByUser(userID)
}

// UpdateBudget replaces a stored budget.
func (s *budgetService) UpdateBudget(b models.Budget) (*models.Budget, error) {
	if err := validateBudget(&b); err != nil {
		return nil, err
	}
	saved, found, err := s.budgets.Update(b)
	if !found {
		return nil, apperrors.ErrBudgetNotFound
	}
	if err != nil {
		return &saved, apperrors.Wrap(apperrors.ErrSnapshotNotSaved, err)
	}
	return &saved, nil
}

// DeleteBudget removes a budget. It returns false for an unknown id.
func (s *budgetService) DeleteBudget(id string) (bool, error) {
	deleted, err := s.budgets.Delete(id)
	if err != nil {
		return deleted, apperrors.Wrap(apperrors.ErrSnapshotNotSaved, err)
	}
	return deleted, nil
}

// CalculateStats computes the period statistics of b as of today.
func (s *budgetService) CalculateStats(b models.Budget, txs []models.Transaction) BudgetStats {
	return ComputeBudgetStats(b, txs, s.today())
}

// StatsForBudget loads a budget and its owner's transactions and computes
// the period statistics.
func (s *budgetService) StatsForBudget(id string) (*BudgetStats, error) {
	b, ok := s.budgets.GetByID(id)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	txs, err := s.transactions.FindVisibleForUser(b.UserID)
	if err != nil {
		logger.Get().Errorw("failed to load transactions for budget stats", "error", err, "budget_id", id)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	stats := s.CalculateStats(b, txs)
	return &stats, nil
}

// ComputeBudgetStats is the period statistics engine. A budget without a
// start date gets a record holding only the budget itself.
func ComputeBudgetStats(b models.Budget, txs []models.Transaction, today period.Date) BudgetStats {
	stats := BudgetStats{
		Budget:             b,
		AmountSpent:        decimal.Zero,
		Remaining:          decimal.Zero,
		AvgPerDayBudget:    decimal.Zero,
		AvgPerDayActual:    decimal.Zero,
		ProjectedTotal:     decimal.Zero,
		ProjectedRemaining: decimal.Zero,
	}
	if b.StartDate == nil || b.StartDate.IsZero() {
		return stats
	}

	start := *b.StartDate
	end, hasEnd := b.EndDate()
	last := today
	if hasEnd && end.Before(today) {
		last = end
	}

	daysElapsed := max(1, period.DaysInclusive(start, last))
	totalDays := max(1, b.TotalDays())

	// Without an end date there is no spend window, so spend stays zero.
	spent := decimal.Zero
	if hasEnd {
		spent = spentInRange(b, txs, start, end)
	}

	elapsed := decimal.NewFromInt(int64(daysElapsed))
	total := decimal.NewFromInt(int64(totalDays))

	stats.DaysElapsed = daysElapsed
	stats.TotalDays = totalDays
	stats.AmountSpent = spent
	stats.Remaining = b.Amount.Sub(spent)
	stats.AvgPerDayBudget = b.Amount.Div(total)
	stats.AvgPerDayActual = spent.Div(elapsed)
	stats.ProjectedTotal = stats.AvgPerDayActual.Mul(total)
	stats.ProjectedRemaining = b.Amount.Sub(stats.ProjectedTotal)
	stats.WillBeOverspent = stats.ProjectedTotal.GreaterThan(b.Amount)

	if daysElapsed >= 7 {
		v := spentInRange(b, txs, today.AddDays(-6), today)
		stats.Last7DaysSpent = &v
	}
	if daysElapsed >= 30 {
		v := spentInRange(b, txs, today.AddDays(-29), today)
		stats.Last30DaysSpent = &v
	}
	return stats
}

// spentInRange sums the budget owner's expenses in the budget's category
// dated within [from, to]. Only budgets with a category match anything;
// total budgets always sum to zero here.
func spentInRange(b models.Budget, txs []models.Transaction, from, to period.Date) decimal.Decimal {
	sum := decimal.Zero
	if b.CategoryID == nil {
		return sum
	}
	for i := range txs {
		tx := &txs[i]
		if !tx.IsExpense() || !tx.OwnedBy(b.UserID) || !tx.InCategory(*b.CategoryID) {
			continue
		}
		d := period.DateOf(tx.Date)
		if d.IsZero() || !d.Between(from, to) {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// FindActiveBudgets returns the user's budgets active on at, or today when
// at is nil. A nil categoryID matches every category.
func (s *budgetService) FindActiveBudgets(userID string, categoryID *string, at *period.Date) []models.Budget {
	effective := s.today()
	if at != nil && !at.IsZero() {
		effective = *at
	}
	return s.budgets.FindActive(userID, categoryID, effective)
}

// CanConsume reports whether an expense fits a budget. Income, expenses
// without a category and expenses with no active budget are always
// allowed. Otherwise one active budget with enough remaining is enough.
func (s *budgetService) CanConsume(tx *models.Transaction) (bool, error) {
	if tx == nil || !tx.IsExpense() || !tx.HasCategory() || tx.UserID == nil {
		return true, nil
	}

	today := s.today()
	at := period.DateOf(tx.Date)
	if at.IsZero() {
		at = today
	}

	actives := s.budgets.FindActive(*tx.UserID, tx.CategoryID, at)
	if len(actives) == 0 {
		return true, nil
	}

	txs, err := s.transactions.FindVisibleForUser(*tx.UserID)
	if err != nil {
		logger.Get().Errorw("failed to load transactions for budget check", "error", err, "user_id", *tx.UserID)
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, b := range actives {
		if ComputeBudgetStats(b, txs, today).Remaining.GreaterThanOrEqual(tx.Amount) {
			return true, nil
		}
	}
	return false, nil
}

// CalculateUsedAmount sums the user's visible expenses in a calendar month.
// A nil categoryID sums every category.
func (s *budgetService) CalculateUsedAmount(userID string, categoryID *string, year, month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	txs, err := s.transactions.FindVisibleForUser(userID)
	if err != nil {
		logger.Get().Errorw("failed to load transactions for monthly usage", "error", err, "user_id", userID)
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return usedInMonth(txs, categoryID, year, month), nil
}

func usedInMonth(txs []models.Transaction, categoryID *string, year, month int) decimal.Decimal {
	first, last := period.MonthRange(year, time.Month(month))
	sum := decimal.Zero
	for i := range txs {
		tx := &txs[i]
		if !tx.IsExpense() {
			continue
		}
		if categoryID != nil && !tx.InCategory(*categoryID) {
			continue
		}
		d := period.DateOf(tx.Date)
		if d.IsZero() || !d.Between(first, last) {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// IsOverBudget reports whether the month's spend is strictly above the
// matching monthly budget. No budget means not over.
func (s *budgetService) IsOverBudget(userID string, categoryID *string, year, month int) (bool, error) {
	usage, err := s.MonthlyUsage(userID, categoryID, year, month)
	if err != nil {
		return false, err
	}
	return usage.OverBudget, nil
}

// GetOverBudgetAmount returns how far the month's spend exceeds the budget,
// never below zero.
func (s *budgetService) GetOverBudgetAmount(userID string, categoryID *string, year, month int) (decimal.Decimal, error) {
	usage, err := s.MonthlyUsage(userID, categoryID, year, month)
	if err != nil {
		return decimal.Zero, err
	}
	return usage.OverAmount, nil
}

// GetBudgetUsageRate returns used/amount clamped to [0, 1]. It is 0 when
// there is no budget or the budget amount is zero.
func (s *budgetService) GetBudgetUsageRate(userID string, categoryID *string, year, month int) (float64, error) {
	usage, err := s.MonthlyUsage(userID, categoryID, year, month)
	if err != nil {
		return 0, err
	}
	return usage.UsageRate, nil
}

// SetMonthlyBudget creates or updates the (user, category, year, month)
// budget. A nil category sets the total budget.
func (s *budgetService) SetMonthlyBudget(userID string, categoryID *string, amount decimal.Decimal, year, month int) (*models.Budget, error) {
	if amount.IsNegative() {
		return nil, apperrors.ErrNegativeAmount
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	saved, err := s.budgets.SetMonthlyBudget(userID, categoryID, amount, year, month)
	if err != nil {
		return &saved, apperrors.Wrap(apperrors.ErrSnapshotNotSaved, err)
	}
	return &saved, nil
}

// MonthlyUsage computes the whole calendar-month view in one pass.
func (s *budgetService) MonthlyUsage(userID string, categoryID *string, year, month int) (*MonthlyUsage, error) {
	used, err := s.CalculateUsedAmount(userID, categoryID, year, month)
	if err != nil {
		return nil, err
	}

	usage := &MonthlyUsage{Used: used, OverAmount: decimal.Zero}
	b, ok := s.budgets.MonthlyBudget(userID, categoryID, year, month)
	if !ok {
		return usage, nil
	}
	usage.Budget = &b
	usage.OverBudget = used.GreaterThan(b.Amount)
	if usage.OverBudget {
		usage.OverAmount = used.Sub(b.Amount)
	}
	if b.Amount.IsPositive() {
		rate := used.Div(b.Amount)
		if rate.GreaterThan(decimal.NewFromInt(1)) {
			rate = decimal.NewFromInt(1)
		}
		usage.UsageRate = rate.InexactFloat64()
	}
	return usage, nil
}

func validateBudget(b *models.Budget) error {
	if b.UserID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget owner is required")
	}
	if b.Amount.IsNegative() {
		return apperrors.ErrNegativeAmount
	}
	if b.PeriodCount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "period count must be positive")
	}
	if b.PeriodUnit != "" && !b.PeriodUnit.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "unknown period unit")
	}
	return nil
}
