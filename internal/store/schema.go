// README: Schema bootstrap for the booking and preference tables.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables if they do not exist. Suitable for local
// development; production deployments run migrations out of band.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id          TEXT PRIMARY KEY,
			user_id             TEXT NOT NULL DEFAULT '',
			status              TEXT NOT NULL,
			confirmation_number TEXT NOT NULL,
			total_cost          DOUBLE PRECISION NOT NULL DEFAULT 0,
			details             JSONB NOT NULL DEFAULT '{}',
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			user_id     TEXT PRIMARY KEY,
			preferences JSONB NOT NULL DEFAULT '{}',
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
