package models

import "time"

// SavingsGoal is the saving target for one month key. At most one row exists
// per month; setting a goal for an existing month updates it in place.
type SavingsGoal struct {
	ID        string    `json:"id"`
	Month     string    `json:"month"`
	Target    float64   `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}
