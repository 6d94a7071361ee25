package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"centavo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyConverted reports a conversion attempt on a pending income that
// is no longer in the pending status.
var ErrAlreadyConverted = errors.New("pending income already converted")

func InsertIncome(ctx context.Context, pool *pgxpool.Pool, income *models.Income) (*models.Income, error) {
	query := `
		INSERT INTO transactions (id, type, status, value, transaction_date, category, description, user_id, user_name)
		VALUES ($1, 'income', 'completed', $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	income.ID = uuid.NewString()
	err := pool.QueryRow(ctx, query,
		income.ID, income.Value, income.Date, income.Category, income.Description, income.UserID, income.UserName).
		Scan(&income.CreatedAt)
	if err != nil {
		return nil, err
	}
	return income, nil
}

func InsertExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO transactions (id, type, status, value, transaction_date, category, description, user_id, user_name)
		VALUES ($1, 'expense', 'completed', $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	expense.ID = uuid.NewString()
	err := pool.QueryRow(ctx, query,
		expense.ID, expense.Value, expense.Date, expense.Category, expense.Description, expense.UserID, expense.UserName).
		Scan(&expense.CreatedAt)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

const updateTransactionQuery = `
	UPDATE transactions
	SET value = $1, transaction_date = $2, category = $3, description = $4
	WHERE id = $5 AND type = $6
	RETURNING id, value, transaction_date, category, description, user_id, user_name, created_at
`

func UpdateIncome(ctx context.Context, pool *pgxpool.Pool, id string, value float64, date time.Time, category, description string) (*models.Income, error) {
	var income models.Income
	err := pool.QueryRow(ctx, updateTransactionQuery, value, date, category, description, id, "income").
		Scan(&income.ID, &income.Value, &income.Date, &income.Category, &income.Description,
			&income.UserID, &income.UserName, &income.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("income not found")
	}
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func UpdateExpense(ctx context.Context, pool *pgxpool.Pool, id string, value float64, date time.Time, category, description string) (*models.Expense, error) {
	var expense models.Expense
	err := pool.QueryRow(ctx, updateTransactionQuery, value, date, category, description, id, "expense").
		Scan(&expense.ID, &expense.Value, &expense.Date, &expense.Category, &expense.Description,
			&expense.UserID, &expense.UserName, &expense.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("expense not found")
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func deleteTransaction(ctx context.Context, pool *pgxpool.Pool, id, txType string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND type = $2`, id, txType)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s not found", txType)
	}
	return nil
}

func DeleteIncome(ctx context.Context, pool *pgxpool.Pool, id string) error {
	return deleteTransaction(ctx, pool, id, "income")
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, id string) error {
	return deleteTransaction(ctx, pool, id, "expense")
}

func InsertPendingIncome(ctx context.Context, pool *pgxpool.Pool, pending *models.PendingIncome) (*models.PendingIncome, error) {
	query := `
		INSERT INTO transactions (id, type, status, value, transaction_date, expected_date, category, description, user_id, user_name)
		VALUES ($1, 'pending_income', 'pending', $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	pending.ID = uuid.NewString()
	err := pool.QueryRow(ctx, query,
		pending.ID, pending.Value, pending.CreatedDate, pending.ExpectedDate,
		pending.Category, pending.Description, pending.UserID, pending.UserName).
		Scan(&pending.CreatedAt)
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// DeletePendingIncome removes a pending income that has not been converted.
// Converted rows are kept as the audit trail of the credited income.
func DeletePendingIncome(ctx context.Context, pool *pgxpool.Pool, id string) error {
	cmd, err := pool.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1 AND type = 'pending_income' AND status = 'pending'`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("pending income not found")
	}
	return nil
}

// ConvertPending credits a pending income: it claims the pending row by
// flipping status pending->converted, then inserts the realized income, all
// in one transaction. The claim makes conversion at-most-once even when two
// sweeps race.
func ConvertPending(ctx context.Context, pool *pgxpool.Pool, p models.PendingIncome, creditedOn time.Time) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin conversion: %w", err)
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx,
		`UPDATE transactions SET status = 'converted' WHERE id = $1 AND status = 'pending'`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to mark pending income converted: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAlreadyConverted
	}

	query := `
		INSERT INTO transactions (id, type, status, value, transaction_date, category, description, user_id, user_name, converted_from_pending_id)
		VALUES ($1, 'income', 'completed', $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, query,
		uuid.NewString(), p.Value, creditedOn, p.Category, p.Description+" (credited)",
		p.UserID, p.UserName, p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert credited income: %w", err)
	}

	return tx.Commit(ctx)
}

// PendingStore adapts the pool to the converter's store interface.
type PendingStore struct {
	Pool *pgxpool.Pool
}

func (s *PendingStore) ConvertPending(ctx context.Context, p models.PendingIncome, creditedOn time.Time) error {
	return ConvertPending(ctx, s.Pool, p, creditedOn)
}
