package services

import (
	"context"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/store"
)

// SearchService filters recipes by a free-text query
type SearchService interface {
	// Search returns the recipes whose ingredients or cuisine contain query.
	// Matching is a plain case-sensitive substring test without ranking.
	Search(ctx context.Context, query string) ([]models.Recipe, error)
}

type searchService struct {
	store store.Store
}

// NewSearchService creates a new instance of SearchService
func NewSearchService(s store.Store) SearchService {
	return &searchService{store: s}
}

func (s *searchService) Search(ctx context.Context, query string) ([]models.Recipe, error) {
	return s.store.FindRecipes(ctx, query)
}
