package repository

import (
	"context"
	"database/sql"

	"github.com/passforge/passforge-go/internal/model"
)

// HistoryRepository persists generation metadata. Schema:
//
//	CREATE TABLE generation_history (
//	    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
//	    length     INT NOT NULL,
//	    strength   VARCHAR(16) NOT NULL,
//	    uppercase  BOOLEAN NOT NULL,
//	    lowercase  BOOLEAN NOT NULL,
//	    numbers    BOOLEAN NOT NULL,
//	    symbols    BOOLEAN NOT NULL,
//	    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert stores a generation record and sets its generated ID.
func (r *HistoryRepository) Insert(ctx context.Context, rec *model.GenerationRecord) error {
	query := `INSERT INTO generation_history (length, strength, uppercase, lowercase, numbers, symbols)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		rec.Length, rec.Strength, rec.Uppercase, rec.Lowercase, rec.Numbers, rec.Symbols,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	rec.ID = id
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error) {
	query := `SELECT id, length, strength, uppercase, lowercase, numbers, symbols, created_at
		FROM generation_history ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GenerationRecord
	for rows.Next() {
		var rec model.GenerationRecord
		if err := rows.Scan(
			&rec.ID, &rec.Length, &rec.Strength,
			&rec.Uppercase, &rec.Lowercase, &rec.Numbers, &rec.Symbols,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteAll removes every generation record and returns the removed count.
func (r *HistoryRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM generation_history`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
