package entities

import (
	"github.com/google/uuid"
)

// Tags and ingredients are reference data loaded by fixtures,
// never written through the API.

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name  string    `gorm:"uniqueIndex;not null" json:"name"`
	Color string    `gorm:"type:varchar(7)" json:"color"`
	Slug  string    `gorm:"uniqueIndex;not null" json:"slug"`

	Recipes []*Recipe `gorm:"many2many:recipe_tags;" json:"recipes,omitempty"`
}

type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"index;not null" json:"name"`
	MeasurementUnit string    `gorm:"not null" json:"measurement_unit"`
}
