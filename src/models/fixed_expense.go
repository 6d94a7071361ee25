package models

import "time"

// FixedExpense is one billing-month occurrence of a recurring bill. A bill
// that repeats every month is represented as one independent row per month
// key; there is no recurrence rule object.
type FixedExpense struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Value          float64    `json:"value"`
	DueDay         int        `json:"due_day"`
	Month          string     `json:"month"`
	IsPaid         bool       `json:"is_paid"`
	PaidByUserID   *string    `json:"paid_by_user_id"`
	PaidByUserName *string    `json:"paid_by_user_name"`
	PaymentDate    *time.Time `json:"payment_date"`
	CreatedAt      time.Time  `json:"created_at"`
}
