package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils/imaging"
	"Foodgram-Backend/internal/utils/storage"
	"Foodgram-Backend/pkg/catalog"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		catalogRepository catalog.CatalogRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	catalogRepository catalog.CatalogRepository,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

// ToMinimalResponse is the card view of a recipe used inside
// favourite, shopping cart and subscription listings.
func ToMinimalResponse(recipe *entities.Recipe) domain.RecipeMinimalResponse {
	return domain.RecipeMinimalResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

func validateIngredients(ingredients []domain.IngredientAmountRequest) error {
	if len(ingredients) == 0 {
		return domain.ErrNoIngredients
	}
	seen := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if _, ok := seen[ing.ID]; ok {
			return domain.ErrDuplicateIngredients
		}
		seen[ing.ID] = struct{}{}
		if ing.Amount <= 0 {
			return domain.ErrInvalidAmount
		}
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) == 0 {
		return domain.ErrNoTags
	}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			return domain.ErrDuplicateTags
		}
		seen[tag] = struct{}{}
	}
	return nil
}

func (s *recipeService) resolveTags(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	tags, err := s.catalogRepository.GetTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, domain.ErrTagNotFound
	}
	return tags, nil
}

func (s *recipeService) resolveAmounts(ctx context.Context, ingredients []domain.IngredientAmountRequest) ([]*entities.IngredientAmount, error) {
	ids := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ids = append(ids, ing.ID)
	}

	stored, err := s.catalogRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(stored) != len(ids) {
		return nil, domain.ErrIngredientNotFound
	}

	amounts := make([]*entities.IngredientAmount, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientUUID, err := uuid.Parse(ing.ID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		amounts = append(amounts, &entities.IngredientAmount{
			ID:           uuid.New(),
			IngredientID: ingredientUUID,
			Amount:       ing.Amount,
		})
	}
	return amounts, nil
}

func (s *recipeService) uploadImage(recipeID uuid.UUID, encoded string) (string, error) {
	data, ext, err := imaging.DecodeBase64Image(encoded)
	if err != nil {
		return "", err
	}
	objectKey, err := s.s3.UploadBytes(recipeID.String(), data, "recipes", ext)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

// renderRecipe builds the full read representation. Derived booleans
// are always recomputed against the viewer, never trusted from input.
func (s *recipeService) renderRecipe(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.RecipeResponse, error) {
	author := recipe.Author
	if author == nil {
		var err error
		author, err = s.userRepository.GetUserByID(ctx, recipe.AuthorID.String())
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}
	authorRes, err := user.ToUserResponse(ctx, s.userRepository, author, viewerID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, catalog.ToTagResponse(tag))
	}

	amounts, err := s.recipeRepository.GetIngredientAmounts(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	ingredients := make([]domain.IngredientAmountResponse, 0, len(amounts))
	for _, amount := range amounts {
		line := domain.IngredientAmountResponse{
			ID:     amount.IngredientID.String(),
			Amount: amount.Amount,
		}
		if amount.Ingredient != nil {
			line.Name = amount.Ingredient.Name
			line.MeasurementUnit = amount.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, line)
	}

	isFavorited, isInCart := false, false
	if viewerID != "" {
		isFavorited, err = s.recipeRepository.IsFavourited(ctx, viewerID, recipe.ID.String())
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		isInCart, err = s.recipeRepository.IsInShoppingCart(ctx, viewerID, recipe.ID.String())
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Tags:             tags,
		Author:           authorRes,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             recipe.Name,
		Image:            recipe.ImageURL,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := s.renderRecipe(ctx, recipe, viewerID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.renderRecipe(ctx, recipe, viewerID)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.RecipeResponse, error) {
	if err := validateTags(req.Tags); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := validateIngredients(req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}
	if req.CookingTime <= 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	amounts, err := s.resolveAmounts(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	authorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipeID := uuid.New()
	imageURL, err := s.uploadImage(recipeID, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          recipeID,
		AuthorID:    authorUUID,
		Name:        req.Name,
		ImageURL:    imageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, amounts, tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.AuthorID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	var tags []*entities.Tag
	if req.Tags != nil {
		if err := validateTags(req.Tags); err != nil {
			return domain.RecipeResponse{}, err
		}
		tags, err = s.resolveTags(ctx, req.Tags)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	var amounts []*entities.IngredientAmount
	if req.Ingredients != nil {
		if err := validateIngredients(req.Ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
		amounts, err = s.resolveAmounts(ctx, req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Text != "" {
		recipe.Text = req.Text
	}
	if req.CookingTime != 0 {
		if req.CookingTime <= 0 {
			return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
		}
		recipe.CookingTime = req.CookingTime
	}
	if req.Image != "" {
		imageURL, err := s.uploadImage(recipe.ID, req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ImageURL = imageURL
	}

	editorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}
	recipe.LastEditorID = &editorUUID

	// Preloaded associations must not be saved back alongside scalars.
	recipe.Author = nil
	recipe.Tags = nil

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, amounts, tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}
