package models

import "time"

// Snapshot is the full in-memory copy of all financial records at a point in
// time. It is replaced wholesale on every reload, never patched field by
// field, so readers always see a consistent state.
type Snapshot struct {
	Incomes        []Income        `json:"incomes"`
	Expenses       []Expense       `json:"expenses"`
	FixedExpenses  []FixedExpense  `json:"fixed_expenses"`
	SavingsGoals   []SavingsGoal   `json:"savings_goals"`
	PendingIncomes []PendingIncome `json:"pending_incomes"`
	LoadedAt       time.Time       `json:"loaded_at"`
}

// Goal returns the savings goal for the given month key, or nil.
func (s *Snapshot) Goal(month string) *SavingsGoal {
	for i := range s.SavingsGoals {
		if s.SavingsGoals[i].Month == month {
			return &s.SavingsGoals[i]
		}
	}
	return nil
}
