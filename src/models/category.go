package models

// CategoryBills is the expense category assigned to expenses that are
// auto-created when a fixed expense is marked paid.
const CategoryBills = "bills"

var IncomeCategories = []string{"salary", "sale", "bonus", "investment", "other"}

var ExpenseCategories = []string{"food", "transport", "leisure", "bills", "health", "education", "housing", "other"}
