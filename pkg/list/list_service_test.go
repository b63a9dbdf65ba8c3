package list_test

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/list"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeFavouriteRepo struct {
	entries  map[string]entities.FavouriteList
	addCalls int
}

func newFakeFavouriteRepo() *fakeFavouriteRepo {
	return &fakeFavouriteRepo{entries: make(map[string]entities.FavouriteList)}
}

func entryKey(userID, recipeID string) string {
	return userID + "|" + recipeID
}

func (r *fakeFavouriteRepo) AddEntry(_ context.Context, entry *entities.FavouriteList) error {
	r.addCalls++
	key := entryKey(entry.UserID.String(), entry.RecipeID.String())
	if _, ok := r.entries[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.entries[key] = *entry
	return nil
}

func (r *fakeFavouriteRepo) RemoveEntry(_ context.Context, userID, recipeID string) (int64, error) {
	key := entryKey(userID, recipeID)
	if _, ok := r.entries[key]; !ok {
		return 0, nil
	}
	delete(r.entries, key)
	return 1, nil
}

func (r *fakeFavouriteRepo) HasEntry(_ context.Context, userID, recipeID string) (bool, error) {
	_, ok := r.entries[entryKey(userID, recipeID)]
	return ok, nil
}

type stubRecipeRepo struct {
	recipes map[string]*entities.Recipe
}

func (r *stubRecipeRepo) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *stubRecipeRepo) CreateRecipe(context.Context, *entities.Recipe, []*entities.IngredientAmount, []*entities.Tag) error {
	return nil
}

func (r *stubRecipeRepo) UpdateRecipe(context.Context, *entities.Recipe, []*entities.IngredientAmount, []*entities.Tag) error {
	return nil
}

func (r *stubRecipeRepo) GetRecipes(context.Context, int, int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (r *stubRecipeRepo) GetRecipesByAuthor(context.Context, string, int) ([]*entities.Recipe, error) {
	return nil, nil
}

func (r *stubRecipeRepo) CountRecipesByAuthor(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *stubRecipeRepo) DeleteRecipe(context.Context, string) error {
	return nil
}

func (r *stubRecipeRepo) GetIngredientAmounts(context.Context, string) ([]*entities.IngredientAmount, error) {
	return nil, nil
}

func (r *stubRecipeRepo) IsFavourited(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *stubRecipeRepo) IsInShoppingCart(context.Context, string, string) (bool, error) {
	return false, nil
}

func newFavouriteService(t *testing.T) (list.ListService[entities.FavouriteList], *fakeFavouriteRepo, *entities.Recipe) {
	t.Helper()

	target := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    uuid.New(),
		Name:        "Pancakes",
		ImageURL:    "https://cdn.test/recipes/pancakes.png",
		CookingTime: 15,
	}
	listRepo := newFakeFavouriteRepo()
	recipeRepo := &stubRecipeRepo{recipes: map[string]*entities.Recipe{target.ID.String(): target}}
	service := list.NewListService(listRepo, recipeRepo, list.NewFavouriteEntry)
	return service, listRepo, target
}

func TestAddRendersRecipeCard(t *testing.T) {
	service, _, target := newFavouriteService(t)
	userID := uuid.New().String()

	res, err := service.Add(context.Background(), target.ID.String(), userID)
	if err != nil {
		t.Fatalf("add favourite: %v", err)
	}
	want := domain.RecipeMinimalResponse{
		ID:          target.ID.String(),
		Name:        "Pancakes",
		Image:       "https://cdn.test/recipes/pancakes.png",
		CookingTime: 15,
	}
	if res != want {
		t.Fatalf("unexpected card %+v, want %+v", res, want)
	}
}

func TestAddUnknownRecipeWritesNothing(t *testing.T) {
	service, listRepo, _ := newFavouriteService(t)

	_, err := service.Add(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected recipe not found, got %v", err)
	}
	if listRepo.addCalls != 0 {
		t.Fatalf("unknown recipe must not reach storage, got %d writes", listRepo.addCalls)
	}
}

func TestAddDuplicatePairFails(t *testing.T) {
	service, _, target := newFavouriteService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	if _, err := service.Add(ctx, target.ID.String(), userID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := service.Add(ctx, target.ID.String(), userID); err == nil {
		t.Fatalf("second add of the same pair must fail")
	}
}

func TestRemoveMissingEntry(t *testing.T) {
	service, _, target := newFavouriteService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	err := service.Remove(ctx, target.ID.String(), userID)
	if !errors.Is(err, domain.ErrListEntryNotFound) {
		t.Fatalf("expected missing entry error, got %v", err)
	}

	if _, err := service.Add(ctx, target.ID.String(), userID); err != nil {
		t.Fatalf("add favourite: %v", err)
	}
	if err := service.Remove(ctx, target.ID.String(), userID); err != nil {
		t.Fatalf("remove favourite: %v", err)
	}
	if err := service.Remove(ctx, target.ID.String(), userID); !errors.Is(err, domain.ErrListEntryNotFound) {
		t.Fatalf("second remove must report missing entry, got %v", err)
	}
}

type fakeCartRepo struct {
	totals []domain.CartItemTotal
}

func (r *fakeCartRepo) GetCartTotals(context.Context, string) ([]domain.CartItemTotal, error) {
	return r.totals, nil
}

func TestDownloadShoppingCart(t *testing.T) {
	service := list.NewCartService(&fakeCartRepo{totals: []domain.CartItemTotal{
		{Name: "flour", MeasurementUnit: "g", Total: 300},
		{Name: "milk", MeasurementUnit: "ml", Total: 250},
	}})

	text, err := service.DownloadShoppingCart(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("download cart: %v", err)
	}
	want := "Shopping list\n\nflour (g): 300\nmilk (ml): 250\n"
	if text != want {
		t.Fatalf("unexpected cart text %q, want %q", text, want)
	}
}

func TestDownloadEmptyCart(t *testing.T) {
	service := list.NewCartService(&fakeCartRepo{})

	text, err := service.DownloadShoppingCart(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("download cart: %v", err)
	}
	if text != "Shopping list\n\n" {
		t.Fatalf("empty cart should render header only, got %q", text)
	}
}
