package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/config"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/controllers"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/database"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/services"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/storage"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, services.CatalogService) {
	dir := t.TempDir()
	conf := &config.Config{
		Database:     database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(dir, "main.db"), MaxRetries: 1},
		ImageStorage: config.ImageStorageLocal,
		UploadDir:    filepath.Join(dir, "uploads"),
		MaxUploadMB:  1,
	}
	db := setupDatabase(conf)
	t.Cleanup(func() { _ = database.Close(db) })

	gin.SetMode(gin.TestMode)
	catalog := services.NewCatalogService(store.New(db))
	rc := controllers.NewRecipeController(catalog, storage.NewLocalStore(conf.UploadDir), 1<<20)
	return setupRouter(db, rc, conf), catalog
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestInitDBIsIdempotent(t *testing.T) {
	router, catalog := setupTestRouter(t)

	id, err := catalog.CreateRecipe(t.Context(), models.RecipeInput{Title: "Soup", Ingredients: "water", Instructions: "boil"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/init-db", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	recipes, err := catalog.ListOrSearch(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, id, recipes[0].ID)
}

func TestSeedDatabaseOnlyWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	db := setupDatabase(&config.Config{
		Database: database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(dir, "seed.db"), MaxRetries: 1},
	})
	t.Cleanup(func() { _ = database.Close(db) })
	catalog := services.NewCatalogService(store.New(db))

	seedDatabase(db, catalog)
	seedDatabase(db, catalog)

	recipes, err := catalog.ListOrSearch(t.Context(), "")
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}
