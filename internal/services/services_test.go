package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/database"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/store"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "catalog.db"),
		MaxRetries: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// setupTestStore returns a store whose clock advances one second per insert
func setupTestStore(t *testing.T) store.Store {
	current := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return store.New(setupTestDB(t), store.WithClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	}))
}
