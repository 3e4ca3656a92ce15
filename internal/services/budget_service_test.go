package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moneybook/internal/clock"
	"moneybook/internal/models"
	"moneybook/internal/period"
	"moneybook/internal/testutil"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func expense(userID, categoryID, amount string, day time.Time) models.Transaction {
	return testutil.NewTestTransaction(userID, categoryID, models.TransactionTypeExpense, amount, day)
}

func TestComputeBudgetStats(t *testing.T) {
	start := period.NewDate(2024, time.January, 1)
	budget := testutil.NewTestBudget("u1", "food", "300", start, period.Days, 30)

	t.Run("halfway example", func(t *testing.T) {
		txs := []models.Transaction{
			expense("u1", "food", "100", testutil.Day(2024, time.January, 3)),
			expense("u1", "food", "50", testutil.Day(2024, time.January, 15)),
		}
		stats := ComputeBudgetStats(budget, txs, period.NewDate(2024, time.January, 15))

		if stats.DaysElapsed != 15 || stats.TotalDays != 30 {
			t.Errorf("expected 15/30 days, got %d/%d", stats.DaysElapsed, stats.TotalDays)
		}
		checks := []struct {
			name string
			got  decimal.Decimal
			want string
		}{
			{"amountSpent", stats.AmountSpent, "150"},
			{"remaining", stats.Remaining, "150"},
			{"avgPerDayBudget", stats.AvgPerDayBudget, "10"},
			{"avgPerDayActual", stats.AvgPerDayActual, "10"},
			{"projectedTotal", stats.ProjectedTotal, "300"},
			{"projectedRemaining", stats.ProjectedRemaining, "0"},
		}
		for _, c := range checks {
			if !c.got.Equal(dec(c.want)) {
				t.Errorf("%s: expected %s, got %s", c.name, c.want, c.got)
			}
		}
		if stats.WillBeOverspent {
			t.Error("projected total equal to the amount is not overspent")
		}
		if stats.Last7DaysSpent == nil || !stats.Last7DaysSpent.Equal(dec("50")) {
			t.Errorf("expected last 7 days 50, got %v", stats.Last7DaysSpent)
		}
		if stats.Last30DaysSpent != nil {
			t.Error("last 30 days must be absent before 30 days elapsed")
		}
	})

	t.Run("filters by type owner category and period", func(t *testing.T) {
		txs := []models.Transaction{
			expense("u1", "food", "10", testutil.Day(2024, time.January, 2)),
			testutil.NewTestTransaction("u1", "food", models.TransactionTypeIncome, "500", testutil.Day(2024, time.January, 2)),
			expense("u2", "food", "20", testutil.Day(2024, time.January, 2)),
			expense("u1", "rent", "30", testutil.Day(2024, time.January, 2)),
			expense("", "food", "40", testutil.Day(2024, time.January, 2)),
			expense("u1", "food", "50", testutil.Day(2023, time.December, 31)),
			expense("u1", "food", "60", testutil.Day(2024, time.January, 31)),
			expense("u1", "food", "70", time.Time{}),
		}
		stats := ComputeBudgetStats(budget, txs, period.NewDate(2024, time.January, 10))
		if !stats.AmountSpent.Equal(dec("10")) {
			t.Errorf("expected only the matching expense, got %s", stats.AmountSpent)
		}
	})

	t.Run("projected overspend is strict", func(t *testing.T) {
		txs := []models.Transaction{expense("u1", "food", "151", testutil.Day(2024, time.January, 1))}
		stats := ComputeBudgetStats(budget, txs, period.NewDate(2024, time.January, 15))
		if !stats.WillBeOverspent {
			t.Errorf("expected overspend with projected %s", stats.ProjectedTotal)
		}
	})

	t.Run("no start date", func(t *testing.T) {
		b := models.NewMonthlyBudget("u1", testutil.StrPtr("food"), dec("300"), 2024, 1)
		stats := ComputeBudgetStats(b, []models.Transaction{expense("u1", "food", "10", testutil.Day(2024, time.January, 2))}, period.NewDate(2024, time.January, 15))

		if stats.Budget.ID != b.ID || stats.DaysElapsed != 0 || stats.TotalDays != 0 {
			t.Errorf("expected an empty record, got %+v", stats)
		}
		if !stats.AmountSpent.IsZero() || stats.Last7DaysSpent != nil {
			t.Errorf("expected zero values, got %+v", stats)
		}
	})

	t.Run("finished period stops at the end date", func(t *testing.T) {
		stats := ComputeBudgetStats(budget, nil, period.NewDate(2024, time.June, 1))
		if stats.DaysElapsed != 30 {
			t.Errorf("expected elapsed capped at 30, got %d", stats.DaysElapsed)
		}
		if stats.Last7DaysSpent == nil || stats.Last30DaysSpent == nil {
			t.Error("both trailing windows expected once 30 days elapsed")
		}
	})

	t.Run("trailing windows end today", func(t *testing.T) {
		long := testutil.NewTestBudget("u1", "food", "1000", start, period.Months, 3)
		txs := []models.Transaction{
			expense("u1", "food", "1", testutil.Day(2024, time.February, 9)),  // today-30
			expense("u1", "food", "2", testutil.Day(2024, time.February, 10)), // today-29
			expense("u1", "food", "4", testutil.Day(2024, time.March, 3)),     // today-7
			expense("u1", "food", "8", testutil.Day(2024, time.March, 4)),     // today-6
			expense("u1", "food", "16", testutil.Day(2024, time.March, 10)),   // today
		}
		stats := ComputeBudgetStats(long, txs, period.NewDate(2024, time.March, 10))

		if !stats.Last7DaysSpent.Equal(dec("24")) {
			t.Errorf("expected last 7 days 24, got %s", stats.Last7DaysSpent)
		}
		if !stats.Last30DaysSpent.Equal(dec("30")) {
			t.Errorf("expected last 30 days 30, got %s", stats.Last30DaysSpent)
		}
	})

	t.Run("total budgets compute zero spend", func(t *testing.T) {
		total := testutil.NewTestBudget("u1", "", "300", start, period.Days, 30)
		txs := []models.Transaction{expense("u1", "food", "100", testutil.Day(2024, time.January, 3))}
		stats := ComputeBudgetStats(total, txs, period.NewDate(2024, time.January, 15))

		if !stats.AmountSpent.IsZero() {
			t.Errorf("expected zero spend for a total budget, got %s", stats.AmountSpent)
		}
		if !stats.Remaining.Equal(dec("300")) {
			t.Errorf("expected remaining 300, got %s", stats.Remaining)
		}
	})

	t.Run("unknown unit counts from start to today", func(t *testing.T) {
		b := testutil.NewTestBudget("u1", "food", "300", start, "", 1)
		stats := ComputeBudgetStats(b, []models.Transaction{expense("u1", "food", "10", testutil.Day(2024, time.January, 2))}, period.NewDate(2024, time.January, 10))
		if stats.DaysElapsed != 10 || stats.TotalDays != 1 {
			t.Errorf("expected 10 elapsed of 1, got %d/%d", stats.DaysElapsed, stats.TotalDays)
		}
		if !stats.AmountSpent.IsZero() {
			t.Errorf("expected zero spend without an end date, got %s", stats.AmountSpent)
		}
	})

	t.Run("first day counts as one", func(t *testing.T) {
		stats := ComputeBudgetStats(budget, nil, start)
		if stats.DaysElapsed != 1 {
			t.Errorf("expected 1, got %d", stats.DaysElapsed)
		}
	})
}

type budgetEnv struct {
	*testEnv
	budgets *BudgetStore
	service BudgetServicer
}

func newBudgetEnv(t *testing.T, now time.Time) *budgetEnv {
	t.Helper()
	env := newTestEnv(t, now)
	budgets := NewBudgetStore(testutil.NewMemorySnapshotStore(), env.clock)
	return &budgetEnv{
		testEnv: env,
		budgets: budgets,
		service: NewBudgetService(budgets, env.txStore, env.clock),
	}
}

func TestStatsForBudget(t *testing.T) {
	env := newBudgetEnv(t, time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC))
	b, err := env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "300", period.NewDate(2024, time.January, 1), period.Days, 30))
	testutil.AssertNoError(t, err)
	testutil.CreateTestTransaction(t, env.db, "u1", "food", models.TransactionTypeExpense, "150", testutil.Day(2024, time.January, 5))

	stats, err := env.service.StatsForBudget(b.ID)
	testutil.AssertNoError(t, err)
	if stats.DaysElapsed != 15 || !stats.AvgPerDayActual.Equal(dec("10")) || !stats.ProjectedTotal.Equal(dec("300")) {
		t.Errorf("unexpected stats %+v", stats)
	}

	_, err = env.service.StatsForBudget("missing")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestCanConsume(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	jan := period.NewDate(2024, time.January, 1)

	t.Run("no active budget allows any amount", func(t *testing.T) {
		env := newBudgetEnv(t, now)
		tx := expense("u1", "food", "1000000000", testutil.Day(2024, time.January, 10))

		ok, err := env.service.CanConsume(&tx)
		testutil.AssertNoError(t, err)
		if !ok {
			t.Error("expected true without an active budget")
		}
	})

	t.Run("income and uncategorized are unconstrained", func(t *testing.T) {
		env := newBudgetEnv(t, now)
		_, _ = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "1", jan, period.Months, 1))

		income := testutil.NewTestTransaction("u1", "food", models.TransactionTypeIncome, "50", testutil.Day(2024, time.January, 10))
		blank := expense("u1", "", "50", testutil.Day(2024, time.January, 10))
		blank.CategoryID = testutil.StrPtr("  ")

		for _, tx := range []models.Transaction{income, blank} {
			ok, err := env.service.CanConsume(&tx)
			testutil.AssertNoError(t, err)
			if !ok {
				t.Errorf("expected %s/%v to be allowed", tx.Type, tx.CategoryID)
			}
		}
	})

	t.Run("remaining must cover the amount", func(t *testing.T) {
		env := newBudgetEnv(t, now)
		_, _ = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "100", jan, period.Months, 1))
		testutil.CreateTestTransaction(t, env.db, "u1", "food", models.TransactionTypeExpense, "60", testutil.Day(2024, time.January, 5))

		fits := expense("u1", "food", "40", testutil.Day(2024, time.January, 10))
		tooBig := expense("u1", "food", "40.01", testutil.Day(2024, time.January, 10))

		if ok, _ := env.service.CanConsume(&fits); !ok {
			t.Error("expected exactly the remaining amount to fit")
		}
		if ok, _ := env.service.CanConsume(&tooBig); ok {
			t.Error("expected amount above remaining to be refused")
		}
	})

	t.Run("any overlapping budget with room is enough", func(t *testing.T) {
		env := newBudgetEnv(t, now)
		_, _ = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "10", jan, period.Months, 1))
		_, _ = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "500", jan, period.Years, 1))

		tx := expense("u1", "food", "100", testutil.Day(2024, time.January, 10))
		if ok, _ := env.service.CanConsume(&tx); !ok {
			t.Error("expected the yearly budget to allow the expense")
		}
	})

	t.Run("missing date uses today", func(t *testing.T) {
		env := newBudgetEnv(t, now)
		_, _ = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "10", period.NewDate(2024, time.January, 15), period.Days, 1))

		tx := expense("u1", "food", "100", time.Time{})
		if ok, _ := env.service.CanConsume(&tx); ok {
			t.Error("expected today's budget to apply")
		}
	})
}

func TestFindActiveBudgets(t *testing.T) {
	env := newBudgetEnv(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	_, _ = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "10", period.NewDate(2024, time.February, 1), period.Weeks, 2))

	if got := env.service.FindActiveBudgets("u1", nil, nil); len(got) != 1 {
		t.Errorf("expected the budget active today, got %d", len(got))
	}
	later := period.NewDate(2024, time.February, 15)
	if got := env.service.FindActiveBudgets("u1", testutil.StrPtr("food"), &later); len(got) != 0 {
		t.Errorf("expected none after the two weeks, got %d", len(got))
	}
}

func TestMonthlyAccounting(t *testing.T) {
	env := newBudgetEnv(t, serviceNow)
	testutil.CreateTestTransaction(t, env.db, "u1", "food", models.TransactionTypeExpense, "80", testutil.Day(2024, time.March, 1))
	testutil.CreateTestTransaction(t, env.db, "u1", "food", models.TransactionTypeExpense, "40", testutil.Day(2024, time.March, 31))
	testutil.CreateTestTransaction(t, env.db, "u1", "rent", models.TransactionTypeExpense, "500", testutil.Day(2024, time.March, 2))
	testutil.CreateTestTransaction(t, env.db, "u1", "food", models.TransactionTypeExpense, "999", testutil.Day(2024, time.April, 1))
	testutil.CreateTestTransaction(t, env.db, "u1", "food", models.TransactionTypeIncome, "999", testutil.Day(2024, time.March, 5))
	testutil.CreateTestTransaction(t, env.db, "", "food", models.TransactionTypeExpense, "5", testutil.Day(2024, time.March, 5))

	food := testutil.StrPtr("food")

	t.Run("used amount", func(t *testing.T) {
		used, err := env.service.CalculateUsedAmount("u1", food, 2024, 3)
		testutil.AssertNoError(t, err)
		if !used.Equal(dec("125")) {
			t.Errorf("expected 125 including the legacy record, got %s", used)
		}
		all, _ := env.service.CalculateUsedAmount("u1", nil, 2024, 3)
		if !all.Equal(dec("625")) {
			t.Errorf("expected 625 across categories, got %s", all)
		}
	})

	t.Run("no budget", func(t *testing.T) {
		over, err := env.service.IsOverBudget("u1", food, 2024, 3)
		testutil.AssertNoError(t, err)
		rate, _ := env.service.GetBudgetUsageRate("u1", food, 2024, 3)
		amount, _ := env.service.GetOverBudgetAmount("u1", food, 2024, 3)
		if over || rate != 0 || !amount.IsZero() {
			t.Errorf("expected no constraint, got over=%v rate=%v amount=%s", over, rate, amount)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		_, err := env.service.SetMonthlyBudget("u1", food, dec("100"), 2024, 3)
		testutil.AssertNoError(t, err)

		over, _ := env.service.IsOverBudget("u1", food, 2024, 3)
		amount, _ := env.service.GetOverBudgetAmount("u1", food, 2024, 3)
		rate, _ := env.service.GetBudgetUsageRate("u1", food, 2024, 3)
		if !over || !amount.Equal(dec("25")) || rate != 1 {
			t.Errorf("expected over by 25 at rate 1, got over=%v amount=%s rate=%v", over, amount, rate)
		}
	})

	t.Run("under budget", func(t *testing.T) {
		_, err := env.service.SetMonthlyBudget("u1", food, dec("250"), 2024, 3)
		testutil.AssertNoError(t, err)

		usage, err := env.service.MonthlyUsage("u1", food, 2024, 3)
		testutil.AssertNoError(t, err)
		if usage.OverBudget || !usage.OverAmount.IsZero() || usage.UsageRate != 0.5 {
			t.Errorf("unexpected usage %+v", usage)
		}
	})

	t.Run("total budget sums every category", func(t *testing.T) {
		_, err := env.service.SetMonthlyBudget("u1", nil, dec("600"), 2024, 3)
		testutil.AssertNoError(t, err)
		over, _ := env.service.IsOverBudget("u1", nil, 2024, 3)
		if !over {
			t.Error("expected 625 to be over a 600 total budget")
		}
	})

	t.Run("zero amount budget has zero rate", func(t *testing.T) {
		_, err := env.service.SetMonthlyBudget("u1", testutil.StrPtr("rent"), decimal.Zero, 2024, 3)
		testutil.AssertNoError(t, err)
		rate, _ := env.service.GetBudgetUsageRate("u1", testutil.StrPtr("rent"), 2024, 3)
		if rate != 0 {
			t.Errorf("expected 0, got %v", rate)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := env.service.CalculateUsedAmount("u1", nil, 2024, 13)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestBudgetCRUD(t *testing.T) {
	env := newBudgetEnv(t, serviceNow)

	created, err := env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "300", period.NewDate(2024, time.January, 1), period.Months, 1))
	testutil.AssertNoError(t, err)

	got, err := env.service.GetBudget(created.ID)
	testutil.AssertNoError(t, err)
	if got.ID != created.ID {
		t.Errorf("expected %s, got %s", created.ID, got.ID)
	}

	got.Amount = dec("450")
	updated, err := env.service.UpdateBudget(*got)
	testutil.AssertNoError(t, err)
	if !updated.Amount.Equal(dec("450")) {
		t.Errorf("expected 450, got %s", updated.Amount)
	}

	if len(env.service.ListBudgets("u1", 0, 0)) != 1 || len(env.service.ListBudgets("u1", 2024, 2)) != 0 {
		t.Error("unexpected list results")
	}

	deleted, err := env.service.DeleteBudget(created.ID)
	testutil.AssertNoError(t, err)
	if !deleted {
		t.Error("expected delete to succeed")
	}
	_, err = env.service.GetBudget(created.ID)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

	_, err = env.service.UpdateBudget(models.Budget{ID: "missing", UserID: "u1"})
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

	t.Run("validation", func(t *testing.T) {
		_, err := env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "-1", period.Date{}, "", 1))
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")

		_, err = env.service.CreateBudget(testutil.NewTestBudget("u1", "food", "1", period.Date{}, period.Unit("DECADES"), 1))
		testutil.AssertAppError(t, err, "INVALID_PERIOD")

		_, err = env.service.CreateBudget(testutil.NewTestBudget("", "food", "1", period.Date{}, "", 1))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestBudgetServiceUsesClockForToday(t *testing.T) {
	clk := clock.NewFixed(time.Date(2024, time.January, 7, 23, 59, 0, 0, time.UTC))
	svc := NewBudgetService(NewBudgetStore(testutil.NewMemorySnapshotStore(), clk), nil, clk)
	b := testutil.NewTestBudget("u1", "food", "70", period.NewDate(2024, time.January, 1), period.Weeks, 1)

	stats := svc.CalculateStats(b, nil)
	if stats.DaysElapsed != 7 || stats.Last7DaysSpent == nil {
		t.Errorf("expected 7 elapsed days with a 7-day window, got %+v", stats)
	}

	clk.Advance(2 * time.Minute)
	stats = svc.CalculateStats(b, nil)
	if stats.DaysElapsed != 7 {
		t.Errorf("expected elapsed to stop at the period end, got %d", stats.DaysElapsed)
	}
}
