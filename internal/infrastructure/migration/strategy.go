package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"campusvoice/internal/shared/logger"
)

//go:embed scripts
var embeddedScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
// Each dialect has its own script directory.
type GooseStrategy struct {
	scripts fs.FS
	logger  logger.Interface
}

func NewGooseStrategy(log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		scripts: embeddedScripts,
		logger:  log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// prepare points goose at the dialect of db and returns the script dir.
func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	dialect, dir, err := gooseDialect(db.Dialector.Name())
	if err != nil {
		return nil, "", err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return nil, "", fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetBaseFS(s.scripts)
	return sqlDB, path.Join("scripts", dir), nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("current migration status", "version", currentVersion, "scripts", dir)

	if err := goose.Up(sqlDB, dir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	s.logger.Infow("starting down migration", "steps", steps)
	for range steps {
		if err := goose.Down(sqlDB, dir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, _, err := s.prepare(db)
	if err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, dir, err := s.prepare(db)
	if err != nil {
		return err
	}
	if err := goose.Status(sqlDB, dir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new SQL migration skeleton into dir on disk.
func (s *GooseStrategy) Create(dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

func gooseDialect(gormDialect string) (dialect, dir string, err error) {
	switch gormDialect {
	case "mysql":
		return "mysql", "mysql", nil
	case "sqlite":
		return "sqlite3", "sqlite", nil
	case "postgres":
		return "postgres", "postgres", nil
	default:
		return "", "", fmt.Errorf("unsupported migration dialect: %s", gormDialect)
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Development and tests use it; production runs goose.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	models := AutoMigrateModels()
	s.logger.Infow("running gorm auto-migrate", "models", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}
