package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ksaito/tctally/internal/db"
	"github.com/ksaito/tctally/internal/domain"
)

// SQLiteSisterRepo implements SisterRepo using a SQLite database.
type SQLiteSisterRepo struct {
	db db.DBTX
}

// NewSQLiteSisterRepo creates a new SQLiteSisterRepo.
func NewSQLiteSisterRepo(conn db.DBTX) *SQLiteSisterRepo {
	return &SQLiteSisterRepo{db: conn}
}

func (r *SQLiteSisterRepo) Create(ctx context.Context, userID string, s *domain.Sister) error {
	query := `INSERT INTO sisters (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		userID,
		s.Name,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sister: %w", err)
	}
	return nil
}

func (r *SQLiteSisterRepo) GetByID(ctx context.Context, id string) (*domain.Sister, error) {
	query := `SELECT id, name, created_at FROM sisters WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Sister
	var createdAtStr string
	if err := row.Scan(&s.ID, &s.Name, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sister: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning sister: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = createdAt
	return &s, nil
}

func (r *SQLiteSisterRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Sister, error) {
	query := `SELECT id, name, created_at FROM sisters WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sisters: %w", err)
	}
	defer rows.Close()

	var sisters []*domain.Sister
	for rows.Next() {
		var s domain.Sister
		var createdAtStr string
		if err := rows.Scan(&s.ID, &s.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning sister row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		s.CreatedAt = createdAt
		sisters = append(sisters, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sisters: %w", err)
	}
	return sisters, nil
}

func (r *SQLiteSisterRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sisters WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting sister: %w", err)
	}
	return nil
}
