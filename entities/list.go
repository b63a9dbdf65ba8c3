package entities

import (
	"time"

	"github.com/google/uuid"
)

// FavouriteList and ShoppingList are create-only join rows. One row per
// user-recipe pair, enforced by the unique index.

type FavouriteList struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_favourite_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"not null;uniqueIndex:idx_favourite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type ShoppingList struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_shopping_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"not null;uniqueIndex:idx_shopping_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
