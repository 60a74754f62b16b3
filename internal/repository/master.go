package repository

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNoMasterSecret = errors.New("master passphrase not configured")

// MasterRepository stores the single owner passphrase hash. Schema:
//
//	CREATE TABLE master_secret (
//	    id         TINYINT PRIMARY KEY,
//	    auth_hash  VARCHAR(255) NOT NULL,
//	    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	);
//
// The table holds at most one row, pinned to id 1.
type MasterRepository struct {
	db *sql.DB
}

// NewMasterRepository creates a new MasterRepository.
func NewMasterRepository(db *sql.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

// Get returns the stored passphrase hash, or ErrNoMasterSecret if none is
// configured yet.
func (r *MasterRepository) Get(ctx context.Context) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT auth_hash FROM master_secret WHERE id = 1`).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoMasterSecret
		}
		return "", err
	}
	return hash, nil
}

// Set stores or replaces the passphrase hash.
func (r *MasterRepository) Set(ctx context.Context, hash string) error {
	query := `INSERT INTO master_secret (id, auth_hash) VALUES (1, ?)
		ON DUPLICATE KEY UPDATE auth_hash = VALUES(auth_hash)`

	_, err := r.db.ExecContext(ctx, query, hash)
	return err
}
