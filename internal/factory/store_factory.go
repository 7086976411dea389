package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobsift/jobsift/internal/adapters/userstore"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"go.uber.org/zap"
)

// StoreFactory creates user stores based on configuration
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateUserStore creates a user store based on the configuration
func (f *StoreFactory) CreateUserStore() (core.UserStore, error) {
	storeCfg := f.cfg.GetStore()

	switch storeCfg.Type {
	case "memory":
		return userstore.NewMemoryStore(f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(storeCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return userstore.NewSQLiteStore(storeCfg.SQLitePath, f.logger)
	case "mysql":
		return userstore.NewMySQLStore(storeCfg.MySQLDSN, f.logger)
	case "postgres":
		return userstore.NewPostgresStore(storeCfg.PostgresDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeCfg.Type)
	}
}
