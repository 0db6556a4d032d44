package services

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/store"
	"github.com/go-playground/validator/v10"
)

// CatalogService provides the recipe catalog use cases
type CatalogService interface {
	// ListOrSearch searches recipes when query is non-empty and lists all
	// recipes newest first otherwise
	ListOrSearch(ctx context.Context, query string) ([]models.Recipe, error)
	// RecipeDetail retrieves a recipe with its comments and rating summary
	RecipeDetail(ctx context.Context, id uint) (models.RecipeDetail, error)
	// CreateRecipe stores a new recipe and returns its id
	CreateRecipe(ctx context.Context, input models.RecipeInput) (uint, error)
	// AddComment attaches a comment to a recipe id
	AddComment(ctx context.Context, recipeID uint, content string) (uint, error)
	// AddRating attaches a score to a recipe id
	AddRating(ctx context.Context, recipeID uint, score int) (uint, error)
	// CreateUser registers a username
	CreateUser(ctx context.Context, username string) (uint, error)
}

// catalogService is the implementation of the CatalogService interface.
// Comments and ratings are accepted for any recipe id, existing or not.
type catalogService struct {
	store    store.Store
	search   SearchService
	ratings  RatingService
	validate *validator.Validate
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(s store.Store) CatalogService {
	return &catalogService{
		store:    s,
		search:   NewSearchService(s),
		ratings:  NewRatingService(s),
		validate: newValidator(),
	}
}

// newValidator reports failing fields by their json names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func (s *catalogService) ListOrSearch(ctx context.Context, query string) ([]models.Recipe, error) {
	if query != "" {
		return s.search.Search(ctx, query)
	}
	return s.store.ListRecipes(ctx)
}

func (s *catalogService) RecipeDetail(ctx context.Context, id uint) (models.RecipeDetail, error) {
	recipe, err := s.store.GetRecipeByID(ctx, id)
	if err != nil {
		return models.RecipeDetail{}, err
	}
	comments, err := s.store.ListCommentsByRecipe(ctx, id)
	if err != nil {
		return models.RecipeDetail{}, err
	}
	summary, err := s.ratings.AverageRating(ctx, id)
	if err != nil {
		return models.RecipeDetail{}, err
	}
	return models.RecipeDetail{
		Recipe:   *recipe,
		Comments: comments,
		Rating:   summary,
	}, nil
}

func (s *catalogService) CreateRecipe(ctx context.Context, input models.RecipeInput) (uint, error) {
	if err := s.validateStruct(input); err != nil {
		return 0, err
	}
	recipe := &models.Recipe{
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Cuisine:      &input.Cuisine,
		PrepTime:     &input.PrepTime,
		Image:        optional(input.Image),
	}
	return s.store.InsertRecipe(ctx, recipe)
}

func (s *catalogService) AddComment(ctx context.Context, recipeID uint, content string) (uint, error) {
	if content == "" {
		return 0, models.NewValidationError("required", "content")
	}
	return s.store.InsertComment(ctx, &models.Comment{Content: content, RecipeID: recipeID})
}

func (s *catalogService) AddRating(ctx context.Context, recipeID uint, score int) (uint, error) {
	return s.store.InsertRating(ctx, &models.Rating{Score: score, RecipeID: recipeID})
}

func (s *catalogService) CreateUser(ctx context.Context, username string) (uint, error) {
	if username == "" {
		return 0, models.NewValidationError("required", "username")
	}
	return s.store.InsertUser(ctx, &models.User{Username: username})
}

func (s *catalogService) validateStruct(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return models.NewValidationError(err.Error())
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return models.NewValidationError(fieldErrs[0].Tag(), fields...)
}

// optional maps an absent image to NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
