package list

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"context"

	"gorm.io/gorm"
)

// RecipeLink is a create-only join row between a user and a recipe.
// Favourites and the shopping cart share one implementation, differing
// only in the backing table.
type RecipeLink interface {
	entities.FavouriteList | entities.ShoppingList
}

type (
	ListRepository[T RecipeLink] interface {
		AddEntry(ctx context.Context, entry *T) error
		RemoveEntry(ctx context.Context, userID, recipeID string) (int64, error)
		HasEntry(ctx context.Context, userID, recipeID string) (bool, error)
	}

	listRepository[T RecipeLink] struct {
		db *gorm.DB
	}
)

func NewListRepository[T RecipeLink](db *gorm.DB) ListRepository[T] {
	return &listRepository[T]{db: db}
}

func (r *listRepository[T]) AddEntry(ctx context.Context, entry *T) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *listRepository[T]) RemoveEntry(ctx context.Context, userID, recipeID string) (int64, error) {
	var model T
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model)
	return result.RowsAffected, result.Error
}

func (r *listRepository[T]) HasEntry(ctx context.Context, userID, recipeID string) (bool, error) {
	var model T
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type (
	CartRepository interface {
		GetCartTotals(ctx context.Context, userID string) ([]domain.CartItemTotal, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// GetCartTotals sums every ingredient across the recipes in the
// viewer's shopping cart, one line per ingredient-unit pair.
func (r *cartRepository) GetCartTotals(ctx context.Context, userID string) ([]domain.CartItemTotal, error) {
	var totals []domain.CartItemTotal
	if err := r.db.WithContext(ctx).
		Model(&entities.IngredientAmount{}).
		Select("ingredients.name as name, ingredients.measurement_unit as measurement_unit, SUM(ingredient_amounts.amount) as total").
		Joins("JOIN shopping_lists ON shopping_lists.recipe_id = ingredient_amounts.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = ingredient_amounts.ingredient_id").
		Where("shopping_lists.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
