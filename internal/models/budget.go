package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"moneybook/internal/period"
)

// Budget caps spending for a user, either in one category or across all of
// them (CategoryID nil). Year and Month anchor the legacy monthly view;
// StartDate, PeriodUnit and PeriodCount describe an arbitrary period used by
// the statistics engine. A budget without a StartDate is not period-tracked.
type Budget struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	CategoryID  *string         `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	StartDate   *period.Date    `json:"startDate"`
	PeriodUnit  period.Unit     `json:"periodUnit,omitempty"`
	PeriodCount int             `json:"periodCount"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// NewMonthlyBudget returns a budget anchored to a calendar month.
func NewMonthlyBudget(userID string, categoryID *string, amount decimal.Decimal, year, month int) Budget {
	return Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Year:        year,
		Month:       month,
		PeriodCount: 1,
	}
}

// UnmarshalJSON defaults PeriodCount to 1 when the field is absent, so
// snapshots written before periods existed still load as one-unit budgets.
func (b *Budget) UnmarshalJSON(data []byte) error {
	type plain Budget
	aux := plain{PeriodCount: 1}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*b = Budget(aux)
	return nil
}

// IsTotalBudget reports whether the budget spans all categories.
func (b *Budget) IsTotalBudget() bool {
	return b.CategoryID == nil || *b.CategoryID == ""
}

// Start returns the period start, or the zero Date when none is set.
func (b *Budget) Start() period.Date {
	if b.StartDate == nil {
		return period.Date{}
	}
	return *b.StartDate
}

// EndDate returns the inclusive last day of the budget period.
func (b *Budget) EndDate() (period.Date, bool) {
	return period.EndDate(b.Start(), b.PeriodUnit, b.PeriodCount)
}

// TotalDays returns the inclusive length of the period, or 0 when the
// period cannot be computed.
func (b *Budget) TotalDays() int {
	end, ok := b.EndDate()
	if !ok {
		return 0
	}
	return period.TotalDays(b.Start(), end)
}

// ActiveOn reports whether at falls inside [start, end].
func (b *Budget) ActiveOn(at period.Date) bool {
	end, ok := b.EndDate()
	if !ok {
		return false
	}
	return at.Between(b.Start(), end)
}

// MatchesMonth reports whether the budget's monthly anchor is year/month.
func (b *Budget) MatchesMonth(year, month int) bool {
	return b.Year == year && b.Month == month
}
