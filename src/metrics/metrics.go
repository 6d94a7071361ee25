package metrics

import (
	"time"

	"centavo-server/src/models"
)

// Clock supplies the current time. Engines take a Clock instead of reading
// the wall clock so tests can pin timestamps.
type Clock func() time.Time

const monthLayout = "2006-01"

// MonthKey returns the YYYY-MM key of t in local time.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

func inMonth(date time.Time, month string) bool {
	return month == "" || date.Format(monthLayout) == month
}

// TotalIncome sums income values for the given month key. An empty month
// sums all time.
func TotalIncome(incomes []models.Income, month string) float64 {
	var total float64
	for _, in := range incomes {
		if inMonth(in.Date, month) {
			total += in.Value
		}
	}
	return total
}

// TotalExpenses sums expense values for the given month key. An empty month
// sums all time.
func TotalExpenses(expenses []models.Expense, month string) float64 {
	var total float64
	for _, e := range expenses {
		if inMonth(e.Date, month) {
			total += e.Value
		}
	}
	return total
}

// TotalFixedExpenses sums fixed expenses whose month key matches, paid or
// not. An empty month sums all rows.
func TotalFixedExpenses(fixed []models.FixedExpense, month string) float64 {
	var total float64
	for _, f := range fixed {
		if month == "" || f.Month == month {
			total += f.Value
		}
	}
	return total
}

// TotalFixedPaid sums only the paid fixed expenses for the month key.
func TotalFixedPaid(fixed []models.FixedExpense, month string) float64 {
	var total float64
	for _, f := range fixed {
		if f.Month == month && f.IsPaid {
			total += f.Value
		}
	}
	return total
}

// Savings is income minus expenses minus paid fixed expenses for the month.
// Unpaid fixed expenses do not reduce savings until they are marked paid.
func Savings(snap *models.Snapshot, month string) float64 {
	return TotalIncome(snap.Incomes, month) -
		TotalExpenses(snap.Expenses, month) -
		TotalFixedPaid(snap.FixedExpenses, month)
}

// SavingsProgress returns how far saved is toward target as a percentage,
// clamped to 100. A zero target yields 0 rather than dividing by zero.
func SavingsProgress(saved, target float64) float64 {
	if target == 0 {
		return 0
	}
	progress := saved / target * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// SavingsRate is the share of total income that was saved.
func SavingsRate(saved, totalIncome float64) float64 {
	if totalIncome == 0 {
		return 0
	}
	return saved / totalIncome * 100
}

// ExpensesByCategory sums expense values per category for the month key.
func ExpensesByCategory(expenses []models.Expense, month string) map[string]float64 {
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		if inMonth(e.Date, month) {
			byCategory[e.Category] += e.Value
		}
	}
	return byCategory
}

// WeeklyAverage sums expenses dated within the trailing weeks*7 days and
// divides by weeks. A flat average over the window, not a per-week bucket
// average.
func WeeklyAverage(expenses []models.Expense, weeks int, now time.Time) float64 {
	if weeks <= 0 {
		return 0
	}
	cutoff := now.Add(-time.Duration(weeks) * 7 * 24 * time.Hour)
	var total float64
	for _, e := range expenses {
		if !e.Date.Before(cutoff) {
			total += e.Value
		}
	}
	return total / float64(weeks)
}

// TrailingWeekTotal sums expenses dated within the last 7 days.
func TrailingWeekTotal(expenses []models.Expense, now time.Time) float64 {
	cutoff := now.Add(-7 * 24 * time.Hour)
	var total float64
	for _, e := range expenses {
		if !e.Date.Before(cutoff) {
			total += e.Value
		}
	}
	return total
}

// Summarize derives the full metrics bundle for one month key.
func Summarize(snap *models.Snapshot, month string, now time.Time) models.MonthlySummary {
	totalIncome := TotalIncome(snap.Incomes, month)
	saved := Savings(snap, month)

	summary := models.MonthlySummary{
		Month:              month,
		TotalIncome:        totalIncome,
		TotalExpenses:      TotalExpenses(snap.Expenses, month),
		TotalFixedExpenses: TotalFixedExpenses(snap.FixedExpenses, month),
		TotalFixedPaid:     TotalFixedPaid(snap.FixedExpenses, month),
		Savings:            saved,
		SavingsRate:        SavingsRate(saved, totalIncome),
		ExpensesByCategory: ExpensesByCategory(snap.Expenses, month),
		WeeklyAverage:      WeeklyAverage(snap.Expenses, 4, now),
	}

	if goal := snap.Goal(month); goal != nil {
		target := goal.Target
		summary.SavingsTarget = &target
		summary.SavingsProgress = SavingsProgress(saved, target)
	}

	return summary
}
