// Package store persists catalog entities through GORM.
//
// The store is append-only: every entity is inserted once and never
// updated or deleted. Foreign keys on comments and ratings are plain
// columns, so inserting one for a recipe id that does not exist succeeds.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"gorm.io/gorm"
)

// Store is the entity store used by the catalog services
type Store interface {
	InsertUser(ctx context.Context, user *models.User) (uint, error)
	InsertRecipe(ctx context.Context, recipe *models.Recipe) (uint, error)
	InsertComment(ctx context.Context, comment *models.Comment) (uint, error)
	InsertRating(ctx context.Context, rating *models.Rating) (uint, error)

	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error)

	// ListRecipes returns every recipe, newest first
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListCommentsByRecipe(ctx context.Context, recipeID uint) ([]models.Comment, error)
	ListRatingsByRecipe(ctx context.Context, recipeID uint) ([]models.Rating, error)

	// FindRecipes returns recipes whose ingredients or cuisine contain
	// query as a case-sensitive substring
	FindRecipes(ctx context.Context, query string) ([]models.Recipe, error)
}

type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// Option customizes a store
type Option func(*gormStore)

// WithClock replaces the clock used for creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *gormStore) {
		s.now = now
	}
}

// New returns a Store backed by db
func New(db *gorm.DB, opts ...Option) Store {
	s := &gormStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *gormStore) InsertUser(ctx context.Context, user *models.User) (uint, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return 0, translate(err, "insert user")
	}
	return user.ID, nil
}

func (s *gormStore) InsertRecipe(ctx context.Context, recipe *models.Recipe) (uint, error) {
	recipe.CreatedAt = s.now()
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return 0, translate(err, "insert recipe")
	}
	return recipe.ID, nil
}

func (s *gormStore) InsertComment(ctx context.Context, comment *models.Comment) (uint, error) {
	comment.CreatedAt = s.now()
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return 0, translate(err, "insert comment")
	}
	return comment.ID, nil
}

func (s *gormStore) InsertRating(ctx context.Context, rating *models.Rating) (uint, error) {
	if err := s.db.WithContext(ctx).Create(rating).Error; err != nil {
		return 0, translate(err, "insert rating")
	}
	return rating.ID, nil
}

func (s *gormStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return getByID[models.User](ctx, s.db, id)
}

func (s *gormStore) GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error) {
	return getByID[models.Recipe](ctx, s.db, id)
}

func (s *gormStore) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	// id breaks ties between recipes created within the same clock tick
	if err := s.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&recipes).Error; err != nil {
		return nil, translate(err, "list recipes")
	}
	return recipes, nil
}

func (s *gormStore) ListCommentsByRecipe(ctx context.Context, recipeID uint) ([]models.Comment, error) {
	return listWhere[models.Comment](ctx, s.db, "recipe_id = ?", recipeID)
}

func (s *gormStore) ListRatingsByRecipe(ctx context.Context, recipeID uint) ([]models.Rating, error) {
	return listWhere[models.Rating](ctx, s.db, "recipe_id = ?", recipeID)
}

func (s *gormStore) FindRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	predicate := containsPredicate(s.db.Dialector.Name())
	return listWhere[models.Recipe](ctx, s.db, predicate, query, query)
}

// containsPredicate returns a case-sensitive substring test for the
// driver. LIKE is avoided because SQLite folds ASCII case for it.
func containsPredicate(dialect string) string {
	switch dialect {
	case "postgres":
		return "strpos(ingredients, ?) > 0 OR strpos(cuisine, ?) > 0"
	default:
		return "instr(ingredients, ?) > 0 OR instr(cuisine, ?) > 0"
	}
}

func getByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("get %T %d", entity, id))
	}
	return &entity, nil
}

func listWhere[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		var zero T
		return nil, translate(err, fmt.Sprintf("list %T", zero))
	}
	return rows, nil
}

// translate maps GORM errors onto the catalog error conditions
func translate(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, models.ErrConstraintViolation)
	default:
		return fmt.Errorf("%s: %w: %v", op, models.ErrStoreUnavailable, err)
	}
}
