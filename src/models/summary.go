package models

// MonthlySummary bundles the derived metrics for one month key.
type MonthlySummary struct {
	Month              string             `json:"month"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	TotalFixedExpenses float64            `json:"total_fixed_expenses"`
	TotalFixedPaid     float64            `json:"total_fixed_paid"`
	Savings            float64            `json:"savings"`
	SavingsTarget      *float64           `json:"savings_target"`
	SavingsProgress    float64            `json:"savings_progress"`
	SavingsRate        float64            `json:"savings_rate"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	WeeklyAverage      float64            `json:"weekly_average"`
}
