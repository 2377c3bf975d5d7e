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

// resultsDoc is the serialized shape of one result document.
type resultsDoc struct {
	Results   []domain.Entry `json:"results"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// SQLiteResultRepo implements ResultRepo over the documents table.
type SQLiteResultRepo struct {
	db db.DBTX
}

// NewSQLiteResultRepo creates a new SQLiteResultRepo.
func NewSQLiteResultRepo(conn db.DBTX) *SQLiteResultRepo {
	return &SQLiteResultRepo{db: conn}
}

func (r *SQLiteResultRepo) Load(ctx context.Context, userID, collection string) ([]domain.Entry, error) {
	query := `SELECT payload FROM documents WHERE user_id = ? AND collection = ?`
	var payload string
	err := r.db.QueryRowContext(ctx, query, userID, collection).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("result document %s/%s: %w", userID, collection, ErrNotFound)
		}
		return nil, fmt.Errorf("loading result document: %w", err)
	}

	var doc resultsDoc
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("decoding result document: %w", err)
	}
	return doc.Results, nil
}

func (r *SQLiteResultRepo) Save(ctx context.Context, userID, collection string, entries []domain.Entry, now time.Time) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	payload, err := json.Marshal(resultsDoc{Results: entries, UpdatedAt: now})
	if err != nil {
		return fmt.Errorf("encoding result document: %w", err)
	}

	query := `INSERT INTO documents (user_id, collection, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, collection) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query, userID, collection, string(payload), now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving result document: %w", err)
	}
	return nil
}
