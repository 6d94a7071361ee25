package metrics

import (
	"testing"
	"time"

	"centavo-server/src/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthKey(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.March, 1), "2024-03"},
		{date(2024, time.December, 31), "2024-12"},
		{date(2025, time.January, 5), "2025-01"},
	}
	for _, c := range cases {
		if got := MonthKey(c.in); got != c.want {
			t.Errorf("MonthKey(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTotalIncomeMonthFilter(t *testing.T) {
	incomes := []models.Income{
		{Value: 1000, Date: date(2024, time.March, 1)},
		{Value: 500, Date: date(2024, time.March, 15)},
		{Value: 250, Date: date(2024, time.April, 1)},
	}

	if got := TotalIncome(incomes, "2024-03"); got != 1500 {
		t.Errorf("TotalIncome(2024-03) = %f, want 1500", got)
	}
	if got := TotalIncome(incomes, ""); got != 1750 {
		t.Errorf("TotalIncome(all time) = %f, want 1750", got)
	}
	if got := TotalIncome(incomes, "2024-05"); got != 0 {
		t.Errorf("TotalIncome(empty month) = %f, want 0", got)
	}
}

func TestSavingsIgnoresUnpaidFixedExpenses(t *testing.T) {
	snap := &models.Snapshot{
		Incomes: []models.Income{
			{Value: 2000, Date: date(2024, time.March, 1)},
		},
		Expenses: []models.Expense{
			{Value: 300, Date: date(2024, time.March, 10)},
		},
		FixedExpenses: []models.FixedExpense{
			{Value: 200, Month: "2024-03", IsPaid: true},
			{Value: 150, Month: "2024-03", IsPaid: false},
			{Value: 999, Month: "2024-02", IsPaid: true},
		},
	}

	// 2000 - 300 - 200; the unpaid 150 and the other month's 999 do not count.
	if got := Savings(snap, "2024-03"); got != 1500 {
		t.Errorf("Savings = %f, want 1500", got)
	}
}

func TestSavingsAfterFixedExpensePaid(t *testing.T) {
	// Income 1000, fixed expense 200 marked paid which also produced the
	// derived expense row: savings must count the cost exactly once.
	snap := &models.Snapshot{
		Incomes: []models.Income{
			{Value: 1000, Date: date(2024, time.March, 1)},
		},
		FixedExpenses: []models.FixedExpense{
			{Value: 200, DueDay: 5, Month: "2024-03", IsPaid: false},
		},
	}
	if got := Savings(snap, "2024-03"); got != 1000 {
		t.Errorf("Savings before payment = %f, want 1000", got)
	}

	snap.FixedExpenses[0].IsPaid = true
	if got := Savings(snap, "2024-03"); got != 800 {
		t.Errorf("Savings after payment = %f, want 800", got)
	}
}

func TestSavingsProgress(t *testing.T) {
	cases := []struct {
		saved, target, want float64
	}{
		{500, 0, 0},
		{-100, 0, 0},
		{50, 100, 50},
		{80, 100, 80},
		{100, 100, 100},
		{250, 100, 100},
	}
	for _, c := range cases {
		if got := SavingsProgress(c.saved, c.target); got != c.want {
			t.Errorf("SavingsProgress(%f, %f) = %f, want %f", c.saved, c.target, got, c.want)
		}
	}
}

func TestSavingsRate(t *testing.T) {
	if got := SavingsRate(500, 0); got != 0 {
		t.Errorf("SavingsRate with zero income = %f, want 0", got)
	}
	if got := SavingsRate(250, 1000); got != 25 {
		t.Errorf("SavingsRate(250, 1000) = %f, want 25", got)
	}
}

func TestExpensesByCategory(t *testing.T) {
	expenses := []models.Expense{
		{Value: 30, Category: "food", Date: date(2024, time.March, 2)},
		{Value: 50, Category: "transport", Date: date(2024, time.March, 5)},
		{Value: 30, Category: "transport", Date: date(2024, time.March, 9)},
		{Value: 70, Category: "food", Date: date(2024, time.April, 1)},
	}

	byCategory := ExpensesByCategory(expenses, "2024-03")
	if len(byCategory) != 2 {
		t.Fatalf("got %d categories, want 2", len(byCategory))
	}
	if byCategory["food"] != 30 {
		t.Errorf("food = %f, want 30", byCategory["food"])
	}
	if byCategory["transport"] != 80 {
		t.Errorf("transport = %f, want 80", byCategory["transport"])
	}
}

func TestWeeklyAverage(t *testing.T) {
	now := date(2024, time.March, 29)
	expenses := []models.Expense{
		{Value: 100, Date: date(2024, time.March, 28)},
		{Value: 100, Date: date(2024, time.March, 20)},
		{Value: 100, Date: date(2024, time.March, 5)},
		{Value: 400, Date: date(2024, time.February, 1)}, // outside the window
	}

	// 300 inside the trailing 28 days, flat-averaged over 4 weeks.
	if got := WeeklyAverage(expenses, 4, now); got != 75 {
		t.Errorf("WeeklyAverage = %f, want 75", got)
	}
	if got := WeeklyAverage(expenses, 0, now); got != 0 {
		t.Errorf("WeeklyAverage with zero weeks = %f, want 0", got)
	}
}

func TestTrailingWeekTotal(t *testing.T) {
	now := date(2024, time.March, 29)
	expenses := []models.Expense{
		{Value: 120, Date: date(2024, time.March, 28)},
		{Value: 80, Date: date(2024, time.March, 23)},
		{Value: 500, Date: date(2024, time.March, 10)},
	}
	if got := TrailingWeekTotal(expenses, now); got != 200 {
		t.Errorf("TrailingWeekTotal = %f, want 200", got)
	}
}

func TestSummarize(t *testing.T) {
	now := date(2024, time.March, 29)
	target := 500.0
	snap := &models.Snapshot{
		Incomes: []models.Income{
			{Value: 2000, Date: date(2024, time.March, 1)},
		},
		Expenses: []models.Expense{
			{Value: 300, Category: "food", Date: date(2024, time.March, 10)},
			{Value: 100, Category: "leisure", Date: date(2024, time.March, 28)},
		},
		FixedExpenses: []models.FixedExpense{
			{Value: 250, Month: "2024-03", IsPaid: true},
			{Value: 90, Month: "2024-03", IsPaid: false},
		},
		SavingsGoals: []models.SavingsGoal{
			{Month: "2024-03", Target: target},
		},
	}

	s := Summarize(snap, "2024-03", now)
	if s.TotalIncome != 2000 {
		t.Errorf("TotalIncome = %f, want 2000", s.TotalIncome)
	}
	if s.TotalExpenses != 400 {
		t.Errorf("TotalExpenses = %f, want 400", s.TotalExpenses)
	}
	if s.TotalFixedExpenses != 340 {
		t.Errorf("TotalFixedExpenses = %f, want 340", s.TotalFixedExpenses)
	}
	if s.TotalFixedPaid != 250 {
		t.Errorf("TotalFixedPaid = %f, want 250", s.TotalFixedPaid)
	}
	if s.Savings != 1350 {
		t.Errorf("Savings = %f, want 1350", s.Savings)
	}
	if s.SavingsTarget == nil || *s.SavingsTarget != target {
		t.Errorf("SavingsTarget = %v, want %f", s.SavingsTarget, target)
	}
	if s.SavingsProgress != 100 {
		t.Errorf("SavingsProgress = %f, want clamped 100", s.SavingsProgress)
	}
	if s.WeeklyAverage != 100 {
		t.Errorf("WeeklyAverage = %f, want 100", s.WeeklyAverage)
	}
}

func TestSummarizeWithoutGoal(t *testing.T) {
	snap := &models.Snapshot{}
	s := Summarize(snap, "2024-03", date(2024, time.March, 29))
	if s.SavingsTarget != nil {
		t.Errorf("SavingsTarget = %v, want nil", s.SavingsTarget)
	}
	if s.SavingsProgress != 0 {
		t.Errorf("SavingsProgress = %f, want 0", s.SavingsProgress)
	}
}
