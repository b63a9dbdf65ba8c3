package catalog_test

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/catalog"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeCatalogRepo struct {
	tags        []*entities.Tag
	ingredients []*entities.Ingredient
}

func (r *fakeCatalogRepo) GetTags(context.Context) ([]*entities.Tag, error) {
	return r.tags, nil
}

func (r *fakeCatalogRepo) GetTagByID(_ context.Context, id string) (*entities.Tag, error) {
	for _, tag := range r.tags {
		if tag.ID.String() == id {
			return tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCatalogRepo) GetTagsByIDs(_ context.Context, ids []string) ([]*entities.Tag, error) {
	var found []*entities.Tag
	for _, id := range ids {
		for _, tag := range r.tags {
			if tag.ID.String() == id {
				found = append(found, tag)
			}
		}
	}
	return found, nil
}

func (r *fakeCatalogRepo) GetIngredients(_ context.Context, name string) ([]*entities.Ingredient, error) {
	var found []*entities.Ingredient
	for _, ingredient := range r.ingredients {
		if strings.HasPrefix(strings.ToLower(ingredient.Name), strings.ToLower(name)) {
			found = append(found, ingredient)
		}
	}
	return found, nil
}

func (r *fakeCatalogRepo) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	for _, ingredient := range r.ingredients {
		if ingredient.ID.String() == id {
			return ingredient, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCatalogRepo) GetIngredientsByIDs(_ context.Context, ids []string) ([]*entities.Ingredient, error) {
	var found []*entities.Ingredient
	for _, id := range ids {
		for _, ingredient := range r.ingredients {
			if ingredient.ID.String() == id {
				found = append(found, ingredient)
			}
		}
	}
	return found, nil
}

func newService() (catalog.CatalogService, *fakeCatalogRepo) {
	repo := &fakeCatalogRepo{
		tags: []*entities.Tag{
			{ID: uuid.New(), Name: "breakfast", Color: "#E26C2D", Slug: "breakfast"},
			{ID: uuid.New(), Name: "dinner", Color: "#49B64E", Slug: "dinner"},
		},
		ingredients: []*entities.Ingredient{
			{ID: uuid.New(), Name: "Flour", MeasurementUnit: "g"},
			{ID: uuid.New(), Name: "flaxseed", MeasurementUnit: "g"},
			{ID: uuid.New(), Name: "milk", MeasurementUnit: "ml"},
		},
	}
	return catalog.NewCatalogService(repo), repo
}

func TestGetTags(t *testing.T) {
	service, repo := newService()

	tags, err := service.GetTags(context.Background())
	if err != nil {
		t.Fatalf("get tags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].ID != repo.tags[0].ID.String() || tags[0].Slug != "breakfast" {
		t.Fatalf("unexpected tag projection %+v", tags[0])
	}
}

func TestGetTagDetailNotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.GetTagDetail(context.Background(), uuid.New().String())
	if !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("expected tag not found, got %v", err)
	}
}

func TestGetIngredientsPrefixSearch(t *testing.T) {
	service, _ := newService()

	ingredients, err := service.GetIngredients(context.Background(), "fl")
	if err != nil {
		t.Fatalf("get ingredients: %v", err)
	}
	if len(ingredients) != 2 {
		t.Fatalf("expected 2 matches for prefix fl, got %d", len(ingredients))
	}

	ingredients, err = service.GetIngredients(context.Background(), "")
	if err != nil {
		t.Fatalf("get ingredients: %v", err)
	}
	if len(ingredients) != 3 {
		t.Fatalf("empty prefix must list everything, got %d", len(ingredients))
	}
}

func TestGetIngredientDetailNotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.GetIngredientDetail(context.Background(), uuid.New().String())
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ingredient not found, got %v", err)
	}
}
