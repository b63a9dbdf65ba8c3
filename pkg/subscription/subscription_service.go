package subscription

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/recipe"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, authorID string, userID string, recipesLimit int) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, authorID string, userID string) error
		GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) ([]domain.SubscriptionResponse, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		recipeRepository       recipe.RecipeRepository
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	userRepository user.UserRepository,
	recipeRepository recipe.RecipeRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		recipeRepository:       recipeRepository,
	}
}

// renderSubscription projects the followed author with a recipe
// listing capped to recipesLimit; zero means unbounded. is_subscribed
// is recomputed through the same existence check the user projection
// uses rather than assumed true.
func (s *subscriptionService) renderSubscription(ctx context.Context, author *entities.User, userID string, recipesLimit int) (domain.SubscriptionResponse, error) {
	isSubscribed, err := s.userRepository.IsSubscribed(ctx, userID, author.ID.String())
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	count, err := s.recipeRepository.CountRecipesByAuthor(ctx, author.ID.String())
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	recipes, err := s.recipeRepository.GetRecipesByAuthor(ctx, author.ID.String(), recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	cards := make([]domain.RecipeMinimalResponse, 0, len(recipes))
	for _, item := range recipes {
		cards = append(cards, recipe.ToMinimalResponse(item))
	}

	return domain.SubscriptionResponse{
		ID:           author.ID.String(),
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: isSubscribed,
		Recipes:      cards,
		RecipesCount: count,
	}, nil
}

func (s *subscriptionService) Subscribe(ctx context.Context, authorID string, userID string, recipesLimit int) (domain.SubscriptionResponse, error) {
	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscriptionResponse{}, err
	}

	if authorID == userID {
		return domain.SubscriptionResponse{}, domain.ErrSelfSubscription
	}

	alreadySubscribed, err := s.userRepository.IsSubscribed(ctx, userID, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	if alreadySubscribed {
		return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	subscription := &entities.Subscription{
		ID:       uuid.New(),
		UserID:   userUUID,
		AuthorID: author.ID,
	}
	if err := s.subscriptionRepository.CreateSubscription(ctx, subscription); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	return s.renderSubscription(ctx, author, userID, recipesLimit)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, authorID string, userID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	affected, err := s.subscriptionRepository.DeleteSubscription(ctx, userID, authorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) ([]domain.SubscriptionResponse, int64, error) {
	subscriptions, count, err := s.subscriptionRepository.GetSubscriptions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.SubscriptionResponse, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		author := subscription.Author
		if author == nil {
			author, err = s.userRepository.GetUserByID(ctx, subscription.AuthorID.String())
			if err != nil {
				return nil, 0, err
			}
		}
		res, err := s.renderSubscription(ctx, author, userID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}
	return result, count, nil
}
