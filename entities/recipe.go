package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID     uuid.UUID  `gorm:"not null" json:"author_id"`
	Name         string     `gorm:"not null" json:"name"`
	ImageURL     string     `json:"image_url,omitempty"`
	Text         string     `gorm:"type:text" json:"text"`
	CookingTime  int        `gorm:"not null" json:"cooking_time"`
	LastEditorID *uuid.UUID `json:"last_editor_id,omitempty"`

	Author     *User               `gorm:"foreignKey:AuthorID"`
	LastEditor *User               `gorm:"foreignKey:LastEditorID"`
	Tags       []*Tag              `gorm:"many2many:recipe_tags;"`
	Amounts    []*IngredientAmount `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type IngredientAmount struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"not null;index" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"not null" json:"ingredient_id"`
	Amount       int       `gorm:"not null" json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
