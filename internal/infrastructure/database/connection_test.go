package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/shared/config"
)

func TestOpen_SQLiteInMemory(t *testing.T) {
	gdb, err := Open(&config.DatabaseConfig{Driver: "sqlite", Path: "file::memory:"})
	require.NoError(t, err)

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.Equal(t, "sqlite", gdb.Dialector.Name())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
