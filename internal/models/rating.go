package models

import (
	"strconv"
)

// NoRatingsLabel is shown in place of an average when a recipe has no ratings.
const NoRatingsLabel = "No ratings yet"

type Rating struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	Score    int  `gorm:"not null" json:"score"`
	RecipeID uint `gorm:"index" json:"recipe_id"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingSummary is the aggregate shown on a recipe page.
// A nil Average means the recipe has not been rated, which is not the
// same thing as an average of zero.
type RatingSummary struct {
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
}

// HasRatings reports whether at least one rating was aggregated
func (s RatingSummary) HasRatings() bool {
	return s.Average != nil
}

func (s RatingSummary) String() string {
	if s.Average == nil {
		return NoRatingsLabel
	}
	return strconv.FormatFloat(*s.Average, 'f', 1, 64)
}
