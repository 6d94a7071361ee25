package models

import "time"

// PendingIncome is expected but not yet received income. Once its expected
// date arrives it is converted into a realized Income exactly once; the
// converted flag is monotonic and converted rows are kept, never deleted.
type PendingIncome struct {
	ID           string    `json:"id"`
	Value        float64   `json:"value"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	ExpectedDate time.Time `json:"expected_date"`
	CreatedDate  time.Time `json:"created_date"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Converted    bool      `json:"converted"`
	CreatedAt    time.Time `json:"created_at"`
}
