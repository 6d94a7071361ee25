package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The alert ledger stores, per alert key, the last period the alert fired
// for. It is what keeps alerts from re-firing within a period across
// process restarts.

func GetLastFired(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var period string
	err := pool.QueryRow(ctx, `SELECT period FROM alert_ledger WHERE alert_key = $1`, key).
		Scan(&period)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return period, nil
}

func SetLastFired(ctx context.Context, pool *pgxpool.Pool, key, period string) error {
	query := `
		INSERT INTO alert_ledger (alert_key, period)
		VALUES ($1, $2)
		ON CONFLICT (alert_key) DO UPDATE SET period = EXCLUDED.period, fired_at = NOW()
	`
	_, err := pool.Exec(ctx, query, key, period)
	return err
}

// AlertLedger adapts the pool to the alert engine's ledger interface.
type AlertLedger struct {
	Pool *pgxpool.Pool
}

func (l *AlertLedger) LastFired(ctx context.Context, key string) (string, error) {
	return GetLastFired(ctx, l.Pool, key)
}

func (l *AlertLedger) MarkFired(ctx context.Context, key, period string) error {
	return SetLastFired(ctx, l.Pool, key, period)
}
