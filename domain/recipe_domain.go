package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessDownloadShopping = "success download shopping cart"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedDownloadShopping = "failed to download shopping cart"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrNoIngredients            = errors.New("at least one ingredient is required")
	ErrDuplicateIngredients     = errors.New("ingredients must be unique")
	ErrInvalidAmount            = errors.New("ingredient amount must be greater than zero")
	ErrNoTags                   = errors.New("at least one tag is required")
	ErrDuplicateTags            = errors.New("tags must be unique")
	ErrInvalidCookingTime       = errors.New("cooking time must be a positive integer")
)

type (
	IngredientAmountRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount" validate:"required"`
	}

	RecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required"`
		Image       string                    `json:"image" validate:"required"`
		Tags        []string                  `json:"tags" validate:"dive,uuid"`
		Ingredients []IngredientAmountRequest `json:"ingredients" validate:"dive"`
	}

	// UpdateRecipeRequest allows partial payloads; a nil ingredient or
	// tag list leaves the stored set untouched.
	UpdateRecipeRequest struct {
		Name        string                    `json:"name" validate:"omitempty,max=200"`
		Text        string                    `json:"text" validate:"omitempty"`
		CookingTime int                       `json:"cooking_time" validate:"omitempty"`
		Image       string                    `json:"image" validate:"omitempty"`
		Tags        []string                  `json:"tags" validate:"omitempty,dive,uuid"`
		Ingredients []IngredientAmountRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	IngredientAmountResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	// RecipeMinimalResponse is the card view used inside favourite,
	// shopping cart and subscription listings.
	RecipeMinimalResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeResponse struct {
		ID                string                     `json:"id"`
		Tags              []TagResponse              `json:"tags"`
		Author            UserResponse               `json:"author"`
		Ingredients       []IngredientAmountResponse `json:"ingredients"`
		IsFavorited       bool                       `json:"is_favorited"`
		IsInShoppingCart  bool                       `json:"is_in_shopping_cart"`
		Name              string                     `json:"name"`
		Image             string                     `json:"image"`
		Text              string                     `json:"text"`
		CookingTime       int                        `json:"cooking_time"`
	}

	// CartItemTotal is one aggregated line of the shopping cart
	// download: the same ingredient across recipes summed up.
	CartItemTotal struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Total           int    `json:"total"`
	}
)
