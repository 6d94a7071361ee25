package util

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

const maxAmount = 1e9

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile("[a-z]").MatchString(password)
	hasUpper := regexp.MustCompile("[A-Z]").MatchString(password)
	hasDigit := regexp.MustCompile("[0-9]").MatchString(password)
	hasSpecial := regexp.MustCompile(`[^A-Za-z0-9]`).MatchString(password)

	return hasLower && hasUpper && hasDigit && hasSpecial
}

// ValidateAmount rejects a monetary value before any write is attempted.
// Values are non-negative; zero is allowed.
func ValidateAmount(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("amount must be a number")
	}
	if value < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if value > maxAmount {
		return fmt.Errorf("amount is too large")
	}
	return nil
}

// ParseDate parses a strict YYYY-MM-DD calendar date in local time.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return t, nil
}

// ValidateMonth checks a YYYY-MM month key.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("month must be YYYY-MM")
	}
	return nil
}

func ValidateDueDay(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("due day must be between 1 and 31")
	}
	return nil
}

// ValidateCategory checks membership in the allowed category set for the
// record kind (income and expense categories are distinct sets).
func ValidateCategory(category string, allowed []string) error {
	if category == "" {
		return fmt.Errorf("category is required")
	}
	for _, a := range allowed {
		if category == a {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", category)
}
