package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusvoice/internal/shared/constants"
	applog "campusvoice/internal/shared/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

var allTables = []string{
	constants.TableDepartments,
	constants.TableUsers,
	constants.TableIssues,
	constants.TableIssueSupports,
	constants.TableIssueContests,
	constants.TableRevalidationVotes,
	constants.TableTimelineEvents,
	constants.TableComments,
	constants.TableProposals,
	constants.TableProposalVotes,
	constants.TableNotifications,
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	gdb := openTestDB(t)
	s := NewGooseStrategy(applog.NewNopLogger())

	require.NoError(t, s.Migrate(gdb))
	for _, table := range allTables {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}

	version, err := s.GetVersion(gdb)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, s.MigrateDown(gdb, 1))
	assert.False(t, gdb.Migrator().HasTable(constants.TableIssues))
}

func TestGooseStrategy_Idempotent(t *testing.T) {
	gdb := openTestDB(t)
	s := NewGooseStrategy(applog.NewNopLogger())

	require.NoError(t, s.Migrate(gdb))
	require.NoError(t, s.Migrate(gdb))
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	gdb := openTestDB(t)
	m := NewManagerWithStrategy(NewGormAutoMigrateStrategy(applog.NewNopLogger()), applog.NewNopLogger())

	require.NoError(t, m.Migrate(gdb))
	for _, table := range allTables {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
}

func TestNewManager_PicksStrategyByEnvironment(t *testing.T) {
	assert.Equal(t, "gorm_auto_migrate", NewManager("development", applog.NewNopLogger()).GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager("production", applog.NewNopLogger()).GetStrategy().GetName())
}

func TestGooseDialect(t *testing.T) {
	d, dir, err := gooseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", d)
	assert.Equal(t, "sqlite", dir)

	_, _, err = gooseDialect("oracle")
	assert.Error(t, err)
}
