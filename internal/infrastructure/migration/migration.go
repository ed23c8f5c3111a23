package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusvoice/internal/shared/logger"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Manager runs the migration strategy chosen for an environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks gorm AutoMigrate for development and goose scripts for
// every other environment.
func NewManager(environment string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case EnvDevelopment, "debug":
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		strategy = NewGooseStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
