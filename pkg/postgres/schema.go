package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		avatar TEXT NOT NULL DEFAULT '',
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'user',
		login_type TEXT NOT NULL DEFAULT 'email',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	// user_id is deliberately not a foreign key: deleting an account keeps
	// its goals and transactions in place.
	`CREATE TABLE IF NOT EXISTS goals (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		target_amount DOUBLE PRECISION NOT NULL,
		saved_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		target_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		goal_id UUID REFERENCES goals(id),
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		type TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user_id ON goals (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_goal_id ON transactions (goal_id)`,
}

// Migrate applies the schema on startup. Statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	logger.Info("Database schema is up to date")
	return nil
}
