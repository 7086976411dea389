package userstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

// PostgresStore is a PostgreSQL implementation of the UserStore interface
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStore creates a new PostgreSQL user store
func NewPostgresStore(dsn string, logger *zap.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			sheet_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &PostgresStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves a user by email
func (s *PostgresStore) Get(ctx context.Context, email string) (*core.UserRecord, error) {
	var user core.UserRecord

	err := s.db.QueryRowContext(ctx, `
		SELECT email, sheet_id, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.Email, &user.SheetID, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// Save stores a new user
func (s *PostgresStore) Save(ctx context.Context, user *core.UserRecord) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, sheet_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET sheet_id = EXCLUDED.sheet_id
	`, user.Email, user.SheetID, createdAt)

	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateSheetID points an existing user at a new tracker
func (s *PostgresStore) UpdateSheetID(ctx context.Context, email, sheetID string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET sheet_id = $1
		WHERE email = $2
	`, sheetID, email)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close PostgreSQL database", zap.Error(err))
	}
}
