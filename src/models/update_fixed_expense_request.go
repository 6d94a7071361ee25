package models

// UpdateFixedExpenseRequest carries a partial fixed-expense edit. Nil fields
// are left unchanged. The month key is never editable; a bill occurrence
// belongs to the month it was created for.
type UpdateFixedExpenseRequest struct {
	Name   *string  `json:"name"`
	Value  *float64 `json:"value"`
	DueDay *int     `json:"due_day"`
	IsPaid *bool    `json:"is_paid"`
}
