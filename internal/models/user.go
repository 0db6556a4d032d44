package models

// User is a catalog member. Recipes may point at a user but nothing
// else in the catalog depends on it.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:80;uniqueIndex;not null" json:"username"`
}

func (User) TableName() string {
	return "users"
}
