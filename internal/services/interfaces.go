package services

import (
	"github.com/shopspring/decimal"

	"moneybook/internal/models"
	"moneybook/internal/pagination"
	"moneybook/internal/period"
	"moneybook/internal/store"
)

// SyncLogServicer records transaction mutations in the per-user sync log.
type SyncLogServicer interface {
	// Record appends one entry for the mutation. Failures are logged and
	// never propagate.
	Record(tx *models.Transaction, action models.SyncAction)
	MaxVersion(userID string) (int64, error)
	ChangesSince(userID string, afterVersion int64, limit int) ([]models.SyncLog, error)
}

// TransactionServicer defines the contract for transaction reconciliation.
type TransactionServicer interface {
	Add(tx *models.Transaction) (*models.Transaction, error)
	AddMany(txs []models.Transaction) ([]models.Transaction, error)
	// Update applies last-write-wins. found is false when id is unknown.
	Update(id string, incoming *models.Transaction) (result *models.Transaction, found bool, err error)
	Delete(id string) (bool, error)
	BatchSync(txs []models.Transaction) (map[string]string, error)
	GetByID(id string) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetVisibleForUser(userID string) ([]models.Transaction, error)
	Filter(userID string, filter store.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	ClearAll() (int, error)
}

// BudgetStats is the period view of one budget as of today.
type BudgetStats struct {
	Budget             models.Budget    `json:"budget"`
	DaysElapsed        int              `json:"daysElapsed"`
	TotalDays          int              `json:"totalDays"`
	AmountSpent        decimal.Decimal  `json:"amountSpent"`
	Remaining          decimal.Decimal  `json:"remaining"`
	AvgPerDayBudget    decimal.Decimal  `json:"avgPerDayBudget"`
	AvgPerDayActual    decimal.Decimal  `json:"avgPerDayActual"`
	ProjectedTotal     decimal.Decimal  `json:"projectedTotal"`
	ProjectedRemaining decimal.Decimal  `json:"projectedRemaining"`
	WillBeOverspent    bool             `json:"willBeOverspent"`
	Last7DaysSpent     *decimal.Decimal `json:"last7DaysSpent"`
	Last30DaysSpent    *decimal.Decimal `json:"last30DaysSpent"`
}

// MonthlyUsage is the calendar-month view of one budget.
type MonthlyUsage struct {
	Budget     *models.Budget  `json:"budget"`
	Used       decimal.Decimal `json:"used"`
	OverBudget bool            `json:"overBudget"`
	OverAmount decimal.Decimal `json:"overAmount"`
	UsageRate  float64         `json:"usageRate"`
}

// BudgetServicer defines the contract for budget bookkeeping and statistics.
type BudgetServicer interface {
	CreateBudget(b models.Budget) (*models.Budget, error)
	GetBudget(id string) (*models.Budget, error)
	ListBudgets(userID string, year, month int) []models.Budget
	UpdateBudget(b models.Budget) (*models.Budget, error)
	DeleteBudget(id string) (bool, error)

	CalculateStats(b models.Budget, txs []models.Transaction) BudgetStats
	StatsForBudget(id string) (*BudgetStats, error)
	FindActiveBudgets(userID string, categoryID *string, at *period.Date) []models.Budget
	CanConsume(tx *models.Transaction) (bool, error)

	CalculateUsedAmount(userID string, categoryID *string, year, month int) (decimal.Decimal, error)
	IsOverBudget(userID string, categoryID *string, year, month int) (bool, error)
	GetOverBudgetAmount(userID string, categoryID *string, year, month int) (decimal.Decimal, error)
	GetBudgetUsageRate(userID string, categoryID *string, year, month int) (float64, error)
	SetMonthlyBudget(userID string, categoryID *string, amount decimal.Decimal, year, month int) (*models.Budget, error)
	MonthlyUsage(userID string, categoryID *string, year, month int) (*MonthlyUsage, error)
}
