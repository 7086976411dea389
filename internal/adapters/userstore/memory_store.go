package userstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

var (
	// ErrNotFound is returned when no user exists for an email
	ErrNotFound = errors.New("user not found")
)

// MemoryStore is an in-memory implementation of the UserStore interface
type MemoryStore struct {
	users  map[string]core.UserRecord
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewMemoryStore creates a new in-memory user store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]core.UserRecord),
		logger: logger,
	}
}

// Get retrieves a user by email
func (s *MemoryStore) Get(ctx context.Context, email string) (*core.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}

	return &user, nil
}

// Save stores a new user
func (s *MemoryStore) Save(ctx context.Context, user *core.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.users[stored.Email] = stored

	s.logger.Debug("Saved user", zap.String("email", stored.Email))
	return nil
}

// UpdateSheetID points an existing user at a new tracker
func (s *MemoryStore) UpdateSheetID(ctx context.Context, email, sheetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return ErrNotFound
	}

	user.SheetID = sheetID
	s.users[email] = user
	return nil
}

// Close releases the store. The in-memory store holds nothing to release.
func (s *MemoryStore) Close() {}
