package db

import (
	"context"
	"fmt"
	"time"

	"centavo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func InsertFixedExpense(ctx context.Context, pool *pgxpool.Pool, f *models.FixedExpense) (*models.FixedExpense, error) {
	query := `
		INSERT INTO fixed_expenses (id, name, value, due_day, month, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	f.ID = uuid.NewString()
	err := pool.QueryRow(ctx, query, f.ID, f.Name, f.Value, f.DueDay, f.Month, f.IsPaid).
		Scan(&f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFixedExpense applies a partial update inside one transaction. Only
// the false->true paid transition records the payer and payment date and
// inserts the derived expense row; flipping a paid bill back to unpaid
// clears the flag without retracting anything, and re-sending paid=true on
// an already-paid bill creates nothing.
func UpdateFixedExpense(ctx context.Context, pool *pgxpool.Pool, id string, req models.UpdateFixedExpenseRequest, payerID, payerName string, now time.Time) (*models.FixedExpense, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	var cur models.FixedExpense
	err = tx.QueryRow(ctx, `
		SELECT id, name, value, due_day, month, is_paid, paid_by_user_id, paid_by_user_name, payment_date, created_at
		FROM fixed_expenses WHERE id = $1
		FOR UPDATE
	`, id).Scan(&cur.ID, &cur.Name, &cur.Value, &cur.DueDay, &cur.Month, &cur.IsPaid,
		&cur.PaidByUserID, &cur.PaidByUserName, &cur.PaymentDate, &cur.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("fixed expense not found")
	}
	if err != nil {
		return nil, err
	}

	cur, markingPaid := applyFixedExpenseUpdate(cur, req, payerID, payerName, now)

	_, err = tx.Exec(ctx, `
		UPDATE fixed_expenses
		SET name = $1, value = $2, due_day = $3, is_paid = $4, paid_by_user_id = $5, paid_by_user_name = $6, payment_date = $7
		WHERE id = $8
	`, cur.Name, cur.Value, cur.DueDay, cur.IsPaid, cur.PaidByUserID, cur.PaidByUserName, cur.PaymentDate, cur.ID)
	if err != nil {
		return nil, err
	}

	if markingPaid {
		_, err = tx.Exec(ctx, `
			INSERT INTO transactions (id, type, status, value, transaction_date, category, description, user_id, user_name)
			VALUES ($1, 'expense', 'completed', $2, $3, $4, $5, $6, $7)
		`, uuid.NewString(), cur.Value, now, models.CategoryBills, "Payment: "+cur.Name, payerID, payerName)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payment expense: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &cur, nil
}

// applyFixedExpenseUpdate merges a partial edit into the current row and
// decides the payment transition. Only the false->true is_paid transition
// records the payer and payment date; the returned flag tells the caller to
// insert the derived payment expense. true->false clears the payment fields,
// and re-sending the current paid state changes nothing.
func applyFixedExpenseUpdate(cur models.FixedExpense, req models.UpdateFixedExpenseRequest, payerID, payerName string, now time.Time) (models.FixedExpense, bool) {
	wasPaid := cur.IsPaid
	if req.Name != nil {
		cur.Name = *req.Name
	}
	if req.Value != nil {
		cur.Value = *req.Value
	}
	if req.DueDay != nil {
		cur.DueDay = *req.DueDay
	}

	markingPaid := req.IsPaid != nil && *req.IsPaid && !wasPaid
	markingUnpaid := req.IsPaid != nil && !*req.IsPaid && wasPaid
	if markingPaid {
		paymentDate := now
		cur.IsPaid = true
		cur.PaidByUserID = &payerID
		cur.PaidByUserName = &payerName
		cur.PaymentDate = &paymentDate
	}
	if markingUnpaid {
		cur.IsPaid = false
		cur.PaidByUserID = nil
		cur.PaidByUserName = nil
		cur.PaymentDate = nil
	}
	return cur, markingPaid
}

func DeleteFixedExpense(ctx context.Context, pool *pgxpool.Pool, id string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM fixed_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("fixed expense not found")
	}
	return nil
}
