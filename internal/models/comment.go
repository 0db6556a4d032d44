package models

import (
	"time"
)

// Comment is immutable once created.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uint      `gorm:"index" json:"recipe_id"`
}

func (Comment) TableName() string {
	return "comments"
}
