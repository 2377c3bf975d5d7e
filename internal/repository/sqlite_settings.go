package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ksaito/tctally/internal/db"
	"github.com/ksaito/tctally/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the documents table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, userID string) (domain.Settings, error) {
	query := `SELECT payload FROM documents WHERE user_id = ? AND collection = ?`
	var payload string
	err := r.db.QueryRowContext(ctx, query, userID, domain.CollectionSettings).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Settings{}, fmt.Errorf("settings for %s: %w", userID, ErrNotFound)
		}
		return domain.Settings{}, fmt.Errorf("loading settings document: %w", err)
	}

	var s domain.Settings
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return domain.Settings{}, fmt.Errorf("decoding settings document: %w", err)
	}
	return s, nil
}

// Put writes the two thresholds with merge semantics: the existing payload
// is decoded into a generic map, only the settings fields are replaced, and
// unrelated fields under the same document survive. Run inside a UnitOfWork
// so the read-modify-write is atomic.
func (r *SQLiteSettingsRepo) Put(ctx context.Context, userID string, s domain.Settings, now time.Time) error {
	merged := map[string]json.RawMessage{}

	query := `SELECT payload FROM documents WHERE user_id = ? AND collection = ?`
	var existing string
	err := r.db.QueryRowContext(ctx, query, userID, domain.CollectionSettings).Scan(&existing)
	switch {
	case err == sql.ErrNoRows:
		// First save for this user.
	case err != nil:
		return fmt.Errorf("loading settings document for merge: %w", err)
	default:
		if err := json.Unmarshal([]byte(existing), &merged); err != nil {
			return fmt.Errorf("decoding existing settings document: %w", err)
		}
	}

	s.UpdatedAt = now
	fresh, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(fresh, &fields); err != nil {
		return fmt.Errorf("re-decoding settings: %w", err)
	}
	for k, v := range fields {
		merged[k] = v
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encoding merged settings document: %w", err)
	}

	upsert := `INSERT INTO documents (user_id, collection, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, collection) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, upsert, userID, domain.CollectionSettings, string(payload), now.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving settings document: %w", err)
	}
	return nil
}
