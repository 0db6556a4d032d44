package services

import (
	"context"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/store"
)

// RatingService aggregates the ratings of a recipe
type RatingService interface {
	// AverageRating returns the rating summary for a recipe
	AverageRating(ctx context.Context, recipeID uint) (models.RatingSummary, error)
}

type ratingService struct {
	store store.Store
}

// NewRatingService creates a new instance of RatingService
func NewRatingService(s store.Store) RatingService {
	return &ratingService{store: s}
}

func (s *ratingService) AverageRating(ctx context.Context, recipeID uint) (models.RatingSummary, error) {
	ratings, err := s.store.ListRatingsByRecipe(ctx, recipeID)
	if err != nil {
		return models.RatingSummary{}, err
	}
	return Summarize(ratings), nil
}

// Summarize computes the mean score rounded to one decimal place.
// An empty slice yields a summary without an average.
func Summarize(ratings []models.Rating) models.RatingSummary {
	if len(ratings) == 0 {
		return models.RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	avg := roundTo(float64(sum)/float64(len(ratings)), 1)
	return models.RatingSummary{Count: len(ratings), Average: &avg}
}

// roundTo rounds the exact binary value of v to places decimals, ties to
// even. Scaling by a power of ten first would round 0.15 up to 0.2.
func roundTo(v float64, places int) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return rounded
}
