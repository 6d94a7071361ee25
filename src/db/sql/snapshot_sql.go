package db

import (
	"context"
	"time"

	"centavo-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadSnapshot reads all financial records and partitions the transactions
// table into incomes, expenses and pending incomes by type and status.
// Converted pending rows stay in storage as the audit trail but are not
// part of the snapshot's pending list.
func LoadSnapshot(ctx context.Context, pool *pgxpool.Pool) (*models.Snapshot, error) {
	snap := &models.Snapshot{LoadedAt: time.Now()}

	rows, err := pool.Query(ctx, `
		SELECT id, type, status, value, transaction_date, expected_date, category, description, user_id, user_name, created_at
		FROM transactions
		ORDER BY transaction_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, txType, status, category, description, userID, userName string
			value                                                       float64
			date                                                        time.Time
			expectedDate                                                *time.Time
			createdAt                                                   time.Time
		)
		err := rows.Scan(&id, &txType, &status, &value, &date, &expectedDate,
			&category, &description, &userID, &userName, &createdAt)
		if err != nil {
			return nil, err
		}

		switch {
		case txType == "income" && status == "completed":
			snap.Incomes = append(snap.Incomes, models.Income{
				ID: id, Value: value, Date: date, Category: category,
				Description: description, UserID: userID, UserName: userName, CreatedAt: createdAt,
			})
		case txType == "expense" && status == "completed":
			snap.Expenses = append(snap.Expenses, models.Expense{
				ID: id, Value: value, Date: date, Category: category,
				Description: description, UserID: userID, UserName: userName, CreatedAt: createdAt,
			})
		case txType == "pending_income" && status == "pending":
			p := models.PendingIncome{
				ID: id, Value: value, CreatedDate: date, Category: category,
				Description: description, UserID: userID, UserName: userName, CreatedAt: createdAt,
			}
			if expectedDate != nil {
				p.ExpectedDate = *expectedDate
			}
			snap.PendingIncomes = append(snap.PendingIncomes, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	feRows, err := pool.Query(ctx, `
		SELECT id, name, value, due_day, month, is_paid, paid_by_user_id, paid_by_user_name, payment_date, created_at
		FROM fixed_expenses
		ORDER BY due_day ASC
	`)
	if err != nil {
		return nil, err
	}
	defer feRows.Close()

	for feRows.Next() {
		var f models.FixedExpense
		err := feRows.Scan(&f.ID, &f.Name, &f.Value, &f.DueDay, &f.Month, &f.IsPaid,
			&f.PaidByUserID, &f.PaidByUserName, &f.PaymentDate, &f.CreatedAt)
		if err != nil {
			return nil, err
		}
		snap.FixedExpenses = append(snap.FixedExpenses, f)
	}
	if err := feRows.Err(); err != nil {
		return nil, err
	}

	goalRows, err := pool.Query(ctx, `
		SELECT id, month, target, created_at
		FROM savings_goals
		ORDER BY month DESC
	`)
	if err != nil {
		return nil, err
	}
	defer goalRows.Close()

	for goalRows.Next() {
		var g models.SavingsGoal
		err := goalRows.Scan(&g.ID, &g.Month, &g.Target, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		snap.SavingsGoals = append(snap.SavingsGoals, g)
	}
	if err := goalRows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}
