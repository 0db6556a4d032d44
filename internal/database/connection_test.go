package database

import (
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitDatabaseSQLite(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db"), MaxRetries: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle", MaxRetries: 1})

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db"), MaxRetries: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Recipe{Title: "Soup", Ingredients: "water", Instructions: "boil"}).Error)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "recipes", "comments", "ratings"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite uses the path",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "recipes.db"},
			expected: "recipes.db",
		},
		{
			name:     "postgres builds a keyword string",
			cfg:      DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "chef", Password: "pw", Name: "recipes", SSLMode: "disable"},
			expected: "host=db user=chef password=pw dbname=recipes port=5432 sslmode=disable",
		},
		{
			name:     "empty driver defaults to sqlite",
			cfg:      DatabaseConfig{Path: "recipes.db"},
			expected: "recipes.db",
		},
		{
			name:     "driver name is case insensitive",
			cfg:      DatabaseConfig{Driver: "SQLite", Path: "recipes.db"},
			expected: "recipes.db",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestDatabaseConfigStringRedactsPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}

	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestDatabaseConfigStringForSQLite(t *testing.T) {
	cfg := DatabaseConfig{Driver: "sqlite", Path: "recipes.db", MaxRetries: 3}

	assert.True(t, cfg.IsSQLite())
	assert.Equal(t, "DatabaseConfig{Driver: sqlite, Path: recipes.db, MaxRetries: 3}", cfg.String())
}

func TestGormLoggerRoutesThroughLogrus(t *testing.T) {
	logger, hook := test.NewNullLogger()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: newGormLogger(logrus.NewEntry(logger)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))
	hook.Reset()

	var recipe models.Recipe
	err = db.First(&recipe, 42).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, hook.AllEntries(), "a missing record should not be logged")

	err = db.Exec("SELECT * FROM missing_table").Error
	require.Error(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "missing_table")
}
