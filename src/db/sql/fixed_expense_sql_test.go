package db

import (
	"testing"
	"time"

	"centavo-server/src/models"
)

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int          { return &i }

func TestApplyFixedExpenseUpdatePaymentTransition(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.Local)
	paidDate := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)

	unpaid := models.FixedExpense{ID: "fe-1", Name: "Rent", Value: 1200, DueDay: 5, Month: "2024-03"}
	paid := models.FixedExpense{
		ID: "fe-1", Name: "Rent", Value: 1200, DueDay: 5, Month: "2024-03",
		IsPaid: true, PaidByUserID: strPtr("1"), PaidByUserName: strPtr("Ana"), PaymentDate: &paidDate,
	}

	tests := []struct {
		name            string
		cur             models.FixedExpense
		req             models.UpdateFixedExpenseRequest
		wantMarkingPaid bool
		wantPaid        bool
		wantPayerSet    bool
	}{
		{
			name:            "marking paid records payer and creates the expense",
			cur:             unpaid,
			req:             models.UpdateFixedExpenseRequest{IsPaid: boolPtr(true)},
			wantMarkingPaid: true,
			wantPaid:        true,
			wantPayerSet:    true,
		},
		{
			name:            "re-sending paid on a paid bill creates nothing",
			cur:             paid,
			req:             models.UpdateFixedExpenseRequest{IsPaid: boolPtr(true)},
			wantMarkingPaid: false,
			wantPaid:        true,
			wantPayerSet:    true,
		},
		{
			name:            "unmarking clears payment fields and retracts nothing",
			cur:             paid,
			req:             models.UpdateFixedExpenseRequest{IsPaid: boolPtr(false)},
			wantMarkingPaid: false,
			wantPaid:        false,
			wantPayerSet:    false,
		},
		{
			name:            "re-sending unpaid on an unpaid bill creates nothing",
			cur:             unpaid,
			req:             models.UpdateFixedExpenseRequest{IsPaid: boolPtr(false)},
			wantMarkingPaid: false,
			wantPaid:        false,
			wantPayerSet:    false,
		},
		{
			name:            "edit without is_paid leaves the payment state alone",
			cur:             paid,
			req:             models.UpdateFixedExpenseRequest{Value: floatPtr(1300)},
			wantMarkingPaid: false,
			wantPaid:        true,
			wantPayerSet:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, markingPaid := applyFixedExpenseUpdate(tt.cur, tt.req, "2", "Bruno", now)

			if markingPaid != tt.wantMarkingPaid {
				t.Errorf("markingPaid = %t, want %t", markingPaid, tt.wantMarkingPaid)
			}
			if got.IsPaid != tt.wantPaid {
				t.Errorf("IsPaid = %t, want %t", got.IsPaid, tt.wantPaid)
			}
			if (got.PaidByUserID != nil) != tt.wantPayerSet || (got.PaymentDate != nil) != tt.wantPayerSet {
				t.Errorf("payer/date set = %t/%t, want %t",
					got.PaidByUserID != nil, got.PaymentDate != nil, tt.wantPayerSet)
			}
			if markingPaid {
				if got.PaidByUserID == nil || *got.PaidByUserID != "2" {
					t.Errorf("PaidByUserID = %v, want the requesting user", got.PaidByUserID)
				}
				if got.PaymentDate == nil || !got.PaymentDate.Equal(now) {
					t.Errorf("PaymentDate = %v, want %v", got.PaymentDate, now)
				}
			}
		})
	}
}

func TestApplyFixedExpenseUpdatePartialFields(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.Local)
	cur := models.FixedExpense{ID: "fe-1", Name: "Rent", Value: 1200, DueDay: 5, Month: "2024-03"}

	got, markingPaid := applyFixedExpenseUpdate(cur, models.UpdateFixedExpenseRequest{
		Name:   strPtr("Rent + parking"),
		DueDay: intPtr(7),
	}, "2", "Bruno", now)

	if markingPaid {
		t.Error("markingPaid = true for a field-only edit, want false")
	}
	if got.Name != "Rent + parking" || got.DueDay != 7 {
		t.Errorf("got name=%q dueDay=%d, want the edited fields applied", got.Name, got.DueDay)
	}
	if got.Value != 1200 || got.Month != "2024-03" {
		t.Errorf("got value=%.0f month=%q, want omitted fields unchanged", got.Value, got.Month)
	}
}
