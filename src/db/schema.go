package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		password_hash BYTEA NOT NULL,
		super_admin BOOLEAN NOT NULL DEFAULT FALSE,
		locked BOOLEAN NOT NULL DEFAULT FALSE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// Incomes, expenses and pending incomes share one table, discriminated
	// by type and status. A pending income becomes an income by inserting a
	// completed income row and flipping its own status to converted.
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL CHECK (type IN ('income', 'expense', 'pending_income')),
		status TEXT NOT NULL DEFAULT 'completed' CHECK (status IN ('completed', 'pending', 'converted')),
		value NUMERIC(14, 2) NOT NULL CHECK (value >= 0),
		transaction_date DATE NOT NULL,
		expected_date DATE,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		user_id TEXT NOT NULL DEFAULT '',
		user_name TEXT NOT NULL DEFAULT '',
		converted_from_pending_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS fixed_expenses (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		value NUMERIC(14, 2) NOT NULL CHECK (value >= 0),
		due_day INT NOT NULL CHECK (due_day BETWEEN 1 AND 31),
		month TEXT NOT NULL,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE,
		paid_by_user_id TEXT,
		paid_by_user_name TEXT,
		payment_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// One goal per month: the unique index is what makes the upsert atomic.
	`CREATE TABLE IF NOT EXISTS savings_goals (
		id UUID PRIMARY KEY,
		month TEXT NOT NULL UNIQUE,
		target NUMERIC(14, 2) NOT NULL CHECK (target >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS alert_ledger (
		alert_key TEXT PRIMARY KEY,
		period TEXT NOT NULL,
		fired_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE OR REPLACE FUNCTION notify_finance_change() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('finance_changes', TG_TABLE_NAME);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS transactions_notify ON transactions`,
	`CREATE TRIGGER transactions_notify
		AFTER INSERT OR UPDATE OR DELETE ON transactions
		FOR EACH STATEMENT EXECUTE FUNCTION notify_finance_change()`,
	`DROP TRIGGER IF EXISTS fixed_expenses_notify ON fixed_expenses`,
	`CREATE TRIGGER fixed_expenses_notify
		AFTER INSERT OR UPDATE OR DELETE ON fixed_expenses
		FOR EACH STATEMENT EXECUTE FUNCTION notify_finance_change()`,
	`DROP TRIGGER IF EXISTS savings_goals_notify ON savings_goals`,
	`CREATE TRIGGER savings_goals_notify
		AFTER INSERT OR UPDATE OR DELETE ON savings_goals
		FOR EACH STATEMENT EXECUTE FUNCTION notify_finance_change()`,
}

// Migrate creates the tables and the change-notification triggers. Every
// statement is idempotent so it runs on every boot.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}
	return nil
}
