package db

import (
	"context"

	"centavo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UpsertSavingsGoal inserts the goal for the month or updates the existing
// row's target in place. The unique index on month makes this atomic; no
// history of prior targets is kept.
func UpsertSavingsGoal(ctx context.Context, pool *pgxpool.Pool, month string, target float64) (*models.SavingsGoal, error) {
	query := `
		INSERT INTO savings_goals (id, month, target)
		VALUES ($1, $2, $3)
		ON CONFLICT (month) DO UPDATE SET target = EXCLUDED.target
		RETURNING id, month, target, created_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, uuid.NewString(), month, target).
		Scan(&g.ID, &g.Month, &g.Target, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
