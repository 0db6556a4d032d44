package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/database"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "store.db"),
		MaxRetries: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// tickingClock returns a clock advancing one second per call
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func strPtr(s string) *string { return &s }

func TestInsertAssignsIdentities(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	first, err := s.InsertRecipe(ctx, &models.Recipe{Title: "Soup", Ingredients: "water", Instructions: "boil"})
	require.NoError(t, err)
	second, err := s.InsertRecipe(ctx, &models.Recipe{Title: "Tea", Ingredients: "leaves", Instructions: "steep"})
	require.NoError(t, err)

	assert.NotZero(t, first)
	assert.NotEqual(t, first, second)

	commentID, err := s.InsertComment(ctx, &models.Comment{Content: "nice", RecipeID: first})
	require.NoError(t, err)
	ratingID, err := s.InsertRating(ctx, &models.Rating{Score: 4, RecipeID: first})
	require.NoError(t, err)

	// identities are unique per type, not across types
	assert.NotZero(t, commentID)
	assert.NotZero(t, ratingID)
}

func TestInsertSetsCreationTime(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(setupTestDB(t), WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	id, err := s.InsertRecipe(ctx, &models.Recipe{Title: "Soup", Ingredients: "water", Instructions: "boil"})
	require.NoError(t, err)

	recipe, err := s.GetRecipeByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, recipe.CreatedAt.Equal(fixed), "created_at = %v", recipe.CreatedAt)
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	s := New(setupTestDB(t))

	recipe, err := s.GetRecipeByID(context.Background(), 42)

	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListRecipesNewestFirst(t *testing.T) {
	s := New(setupTestDB(t), WithClock(tickingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))
	ctx := context.Background()

	var ids []uint
	for _, title := range []string{"A", "B", "C"} {
		id, err := s.InsertRecipe(ctx, &models.Recipe{Title: title, Ingredients: "x", Instructions: "y"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	recipes, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{recipes[0].Title, recipes[1].Title, recipes[2].Title})
}

func TestListWhereFiltersByRecipe(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	for _, c := range []models.Comment{
		{Content: "one", RecipeID: 1},
		{Content: "two", RecipeID: 2},
		{Content: "three", RecipeID: 1},
	} {
		_, err := s.InsertComment(ctx, &c)
		require.NoError(t, err)
	}
	_, err := s.InsertRating(ctx, &models.Rating{Score: 5, RecipeID: 2})
	require.NoError(t, err)

	comments, err := s.ListCommentsByRecipe(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Content)
	assert.Equal(t, "three", comments[1].Content)

	ratings, err := s.ListRatingsByRecipe(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestInsertUserDuplicateUsername(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	_, err := s.InsertUser(ctx, &models.User{Username: "chef"})
	require.NoError(t, err)

	_, err = s.InsertUser(ctx, &models.User{Username: "chef"})
	assert.ErrorIs(t, err, models.ErrConstraintViolation)
}

func TestGetUserByID(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	id, err := s.InsertUser(ctx, &models.User{Username: "chef"})
	require.NoError(t, err)

	user, err := s.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "chef", user.Username)

	missing, err := s.GetUserByID(ctx, id+1)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFindRecipesIsCaseSensitive(t *testing.T) {
	s := New(setupTestDB(t))
	ctx := context.Background()

	_, err := s.InsertRecipe(ctx, &models.Recipe{Title: "Roast", Ingredients: "Chicken breast", Instructions: "roast it"})
	require.NoError(t, err)
	_, err = s.InsertRecipe(ctx, &models.Recipe{Title: "Curry", Ingredients: "rice", Instructions: "simmer", Cuisine: strPtr("chicken tikka")})
	require.NoError(t, err)
	_, err = s.InsertRecipe(ctx, &models.Recipe{Title: "Salad", Ingredients: "lettuce", Instructions: "toss"})
	require.NoError(t, err)

	lower, err := s.FindRecipes(ctx, "chicken")
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, "Curry", lower[0].Title)

	upper, err := s.FindRecipes(ctx, "Chicken")
	require.NoError(t, err)
	require.Len(t, upper, 1)
	assert.Equal(t, "Roast", upper[0].Title)
}

func TestTranslateWrapsUnknownErrors(t *testing.T) {
	err := translate(assert.AnError, "list recipes")

	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), assert.AnError.Error())
}

func TestStoreUnavailableAfterClose(t *testing.T) {
	db := setupTestDB(t)
	s := New(db)
	require.NoError(t, database.Close(db))

	_, err := s.ListRecipes(context.Background())
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
