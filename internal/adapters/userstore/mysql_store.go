package userstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

const mysqlTimeFormat = "2006-01-02 15:04:05"

// MySQLStore is a MySQL implementation of the UserStore interface
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL user store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			sheet_id VARCHAR(255) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves a user by email
func (s *MySQLStore) Get(ctx context.Context, email string) (*core.UserRecord, error) {
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

	user.CreatedAt, err = time.Parse(mysqlTimeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &user, nil
}

// Save stores a new user
func (s *MySQLStore) Save(ctx context.Context, user *core.UserRecord) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, sheet_id, created_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			sheet_id = VALUES(sheet_id)
	`, user.Email, user.SheetID, createdAt.Format(mysqlTimeFormat))

	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateSheetID points an existing user at a new tracker
func (s *MySQLStore) UpdateSheetID(ctx context.Context, email, sheetID string) error {
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
		// MySQL reports changed rows, not matched rows, so an unchanged
		// value also lands here. Only a missing user is an error.
		if _, err := s.Get(ctx, email); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database connection
func (s *MySQLStore) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
