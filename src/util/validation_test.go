package util

import (
	"math"
	"testing"
	"time"

	"centavo-server/src/models"
)

func TestValidateAmount(t *testing.T) {
	valid := []float64{0, 0.01, 1.0, 100.5, 9999999.99}
	for _, amount := range valid {
		if err := ValidateAmount(amount); err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}

	invalid := []float64{-0.01, -100, 1e10, math.NaN(), math.Inf(1)}
	for _, amount := range invalid {
		if err := ValidateAmount(amount); err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("ParseDate(2024-03-05) error = %v, want nil", err)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate(2024-03-05) = %v, want %v", got, want)
	}

	invalid := []string{"", "2024/03/05", "05-03-2024", "2024-3-5", "not-a-date", "2024-13-01", "2024-02-30"}
	for _, date := range invalid {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	if err := ValidateMonth("2024-03"); err != nil {
		t.Errorf("ValidateMonth(2024-03) error = %v, want nil", err)
	}
	invalid := []string{"", "2024", "2024-3", "2024-13", "03-2024"}
	for _, month := range invalid {
		if err := ValidateMonth(month); err == nil {
			t.Errorf("ValidateMonth(%q) error = nil, want error", month)
		}
	}
}

func TestValidateDueDay(t *testing.T) {
	for _, day := range []int{1, 15, 31} {
		if err := ValidateDueDay(day); err != nil {
			t.Errorf("ValidateDueDay(%d) error = %v, want nil", day, err)
		}
	}
	for _, day := range []int{0, -1, 32} {
		if err := ValidateDueDay(day); err == nil {
			t.Errorf("ValidateDueDay(%d) error = nil, want error", day)
		}
	}
}

func TestValidateCategory(t *testing.T) {
	for _, c := range models.ExpenseCategories {
		if err := ValidateCategory(c, models.ExpenseCategories); err != nil {
			t.Errorf("ValidateCategory(%q) error = %v, want nil", c, err)
		}
	}
	for _, c := range []string{"", "groceries", "definitely-not-a-category"} {
		if err := ValidateCategory(c, models.ExpenseCategories); err == nil {
			t.Errorf("ValidateCategory(%q) error = nil, want error", c)
		}
	}
	// The income and expense sets are distinct: an expense category is not a
	// valid income category.
	if err := ValidateCategory("salary", models.IncomeCategories); err != nil {
		t.Errorf("ValidateCategory(salary, income) error = %v, want nil", err)
	}
	if err := ValidateCategory("food", models.IncomeCategories); err == nil {
		t.Error("ValidateCategory(food, income) error = nil, want error")
	}
}
