package userstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

// SQLiteStore is a SQLite implementation of the UserStore interface
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite user store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			sheet_id TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves a user by email
func (s *SQLiteStore) Get(ctx context.Context, email string) (*core.UserRecord, error) {
	var user core.UserRecord
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT email, sheet_id, created_at
		FROM users
		WHERE email = ?
	`, email).Scan(&user.Email, &user.SheetID, &createdAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &user, nil
}

// Save stores a new user
func (s *SQLiteStore) Save(ctx context.Context, user *core.UserRecord) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO users (email, sheet_id, created_at)
		VALUES (?, ?, ?)
	`, user.Email, user.SheetID, createdAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateSheetID points an existing user at a new tracker
func (s *SQLiteStore) UpdateSheetID(ctx context.Context, email, sheetID string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET sheet_id = ?
		WHERE email = ?
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
func (s *SQLiteStore) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
