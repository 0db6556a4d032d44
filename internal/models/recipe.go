package models

import (
	"time"
)

// Recipe is a user-submitted dish. Optional columns are pointers so an
// absent value is stored as NULL.
type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Ingredients  string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	Cuisine      *string   `gorm:"size:100" json:"cuisine,omitempty"`
	PrepTime     *string   `gorm:"size:50" json:"prep_time,omitempty"`
	Image        *string   `gorm:"size:300" json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       *uint     `gorm:"index" json:"user_id,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeInput carries the fields accepted when a recipe is submitted.
type RecipeInput struct {
	Title        string `form:"title" json:"title" validate:"required"`
	Ingredients  string `form:"ingredients" json:"ingredients" validate:"required"`
	Instructions string `form:"instructions" json:"instructions" validate:"required"`
	Cuisine      string `form:"cuisine" json:"cuisine"`
	PrepTime     string `form:"prep_time" json:"prep_time"`
	// Image is the location handed back by the upload storage, if any.
	Image string `form:"-" json:"-"`
}

// RecipeDetail is a recipe together with its comments and rating summary.
type RecipeDetail struct {
	Recipe   Recipe        `json:"recipe"`
	Comments []Comment     `json:"comments"`
	Rating   RatingSummary `json:"rating"`
}
