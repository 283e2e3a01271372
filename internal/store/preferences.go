// README: User preference store backed by PostgreSQL (JSONB documents).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferenceStore struct {
	db *pgxpool.Pool
}

func NewPreferenceStore(db *pgxpool.Pool) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Upsert replaces the stored preference document for a user.
func (s *PreferenceStore) Upsert(ctx context.Context, userID string, preferences map[string]any) error {
	doc, err := json.Marshal(preferences)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	_, err = s.db.Exec(ctx, `
        INSERT INTO user_preferences (user_id, preferences, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (user_id) DO UPDATE SET
            preferences = EXCLUDED.preferences,
            updated_at = now()`,
		userID, doc,
	)
	return err
}

// Get returns the preference document for a user, or ErrNotFound.
func (s *PreferenceStore) Get(ctx context.Context, userID string) (map[string]any, error) {
	var doc []byte
	err := s.db.QueryRow(ctx,
		`SELECT preferences FROM user_preferences WHERE user_id = $1`, userID,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var preferences map[string]any
	if err := json.Unmarshal(doc, &preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return preferences, nil
}
