package list

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/recipe"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ListService covers both favourites and the shopping cart. The
	// join row itself is never exposed: Add renders the linked recipe's
	// card view.
	ListService[T RecipeLink] interface {
		Add(ctx context.Context, recipeID string, userID string) (domain.RecipeMinimalResponse, error)
		Remove(ctx context.Context, recipeID string, userID string) error
	}

	listService[T RecipeLink] struct {
		listRepository   ListRepository[T]
		recipeRepository recipe.RecipeRepository
		newEntry         func(userID, recipeID uuid.UUID) T
	}
)

func NewListService[T RecipeLink](
	listRepository ListRepository[T],
	recipeRepository recipe.RecipeRepository,
	newEntry func(userID, recipeID uuid.UUID) T,
) ListService[T] {
	return &listService[T]{
		listRepository:   listRepository,
		recipeRepository: recipeRepository,
		newEntry:         newEntry,
	}
}

// NewFavouriteEntry and NewShoppingEntry are the per-table constructors
// handed to NewListService.

func NewFavouriteEntry(userID, recipeID uuid.UUID) entities.FavouriteList {
	return entities.FavouriteList{ID: uuid.New(), UserID: userID, RecipeID: recipeID}
}

func NewShoppingEntry(userID, recipeID uuid.UUID) entities.ShoppingList {
	return entities.ShoppingList{ID: uuid.New(), UserID: userID, RecipeID: recipeID}
}

func (s *listService[T]) Add(ctx context.Context, recipeID string, userID string) (domain.RecipeMinimalResponse, error) {
	// Resolve the target before touching storage: a bad recipe id must
	// fail not-found without any write.
	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeMinimalResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeMinimalResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeMinimalResponse{}, domain.ErrParseUUID
	}

	entry := s.newEntry(userUUID, target.ID)
	if err := s.listRepository.AddEntry(ctx, &entry); err != nil {
		// Duplicate pairs hit the unique index; the storage error
		// propagates as a generic creation failure.
		return domain.RecipeMinimalResponse{}, err
	}

	return recipe.ToMinimalResponse(target), nil
}

func (s *listService[T]) Remove(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	affected, err := s.listRepository.RemoveEntry(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrListEntryNotFound
	}
	return nil
}

type (
	CartService interface {
		DownloadShoppingCart(ctx context.Context, userID string) (string, error)
	}

	cartService struct {
		cartRepository CartRepository
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{cartRepository: cartRepository}
}

func (s *cartService) DownloadShoppingCart(ctx context.Context, userID string) (string, error) {
	totals, err := s.cartRepository.GetCartTotals(ctx, userID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Shopping list\n\n")
	for _, item := range totals {
		fmt.Fprintf(&sb, "%s (%s): %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	return sb.String(), nil
}
