package subscription_test

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/subscription"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// subStore is shared between the subscription and user fakes so
// is_subscribed reflects rows written through the subscription repo.
type subStore struct {
	subs map[string]*entities.Subscription
}

func pairKey(userID, authorID string) string {
	return userID + "|" + authorID
}

type fakeSubscriptionRepo struct {
	store *subStore
}

func (r *fakeSubscriptionRepo) CreateSubscription(_ context.Context, sub *entities.Subscription) error {
	key := pairKey(sub.UserID.String(), sub.AuthorID.String())
	if _, ok := r.store.subs[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.store.subs[key] = sub
	return nil
}

func (r *fakeSubscriptionRepo) DeleteSubscription(_ context.Context, userID, authorID string) (int64, error) {
	key := pairKey(userID, authorID)
	if _, ok := r.store.subs[key]; !ok {
		return 0, nil
	}
	delete(r.store.subs, key)
	return 1, nil
}

func (r *fakeSubscriptionRepo) GetSubscriptions(_ context.Context, userID string, page, limit int) ([]*entities.Subscription, int64, error) {
	var subs []*entities.Subscription
	for _, sub := range r.store.subs {
		if sub.UserID.String() == userID {
			subs = append(subs, sub)
		}
	}
	return subs, int64(len(subs)), nil
}

type fakeUserRepo struct {
	users map[string]*entities.User
	store *subStore
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepo) IsSubscribed(_ context.Context, userID, authorID string) (bool, error) {
	_, ok := r.store.subs[pairKey(userID, authorID)]
	return ok, nil
}

type fakeRecipeRepo struct {
	byAuthor map[string][]*entities.Recipe
}

func (r *fakeRecipeRepo) GetRecipesByAuthor(_ context.Context, authorID string, limit int) ([]*entities.Recipe, error) {
	recipes := r.byAuthor[authorID]
	if limit > 0 && len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

func (r *fakeRecipeRepo) CountRecipesByAuthor(_ context.Context, authorID string) (int64, error) {
	return int64(len(r.byAuthor[authorID])), nil
}

func (r *fakeRecipeRepo) CreateRecipe(context.Context, *entities.Recipe, []*entities.IngredientAmount, []*entities.Tag) error {
	return nil
}

func (r *fakeRecipeRepo) UpdateRecipe(context.Context, *entities.Recipe, []*entities.IngredientAmount, []*entities.Tag) error {
	return nil
}

func (r *fakeRecipeRepo) GetRecipeByID(context.Context, string) (*entities.Recipe, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRecipeRepo) GetRecipes(context.Context, int, int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (r *fakeRecipeRepo) DeleteRecipe(context.Context, string) error {
	return nil
}

func (r *fakeRecipeRepo) GetIngredientAmounts(context.Context, string) ([]*entities.IngredientAmount, error) {
	return nil, nil
}

func (r *fakeRecipeRepo) IsFavourited(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *fakeRecipeRepo) IsInShoppingCart(context.Context, string, string) (bool, error) {
	return false, nil
}

type fixture struct {
	service  subscription.SubscriptionService
	follower *entities.User
	author   *entities.User
}

func newFixture(t *testing.T, authorRecipes int) *fixture {
	t.Helper()

	follower := &entities.User{ID: uuid.New(), Email: "fan@example.com", Username: "fan"}
	author := &entities.User{ID: uuid.New(), Email: "chef@example.com", Username: "chef"}

	store := &subStore{subs: make(map[string]*entities.Subscription)}
	userRepo := &fakeUserRepo{
		users: map[string]*entities.User{
			follower.ID.String(): follower,
			author.ID.String():   author,
		},
		store: store,
	}

	recipes := &fakeRecipeRepo{byAuthor: make(map[string][]*entities.Recipe)}
	for i := 0; i < authorRecipes; i++ {
		recipes.byAuthor[author.ID.String()] = append(recipes.byAuthor[author.ID.String()], &entities.Recipe{
			ID:          uuid.New(),
			AuthorID:    author.ID,
			Name:        "dish",
			CookingTime: 5,
		})
	}

	service := subscription.NewSubscriptionService(&fakeSubscriptionRepo{store: store}, userRepo, recipes)
	return &fixture{service: service, follower: follower, author: author}
}

func TestSubscribe(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	res, err := f.service.Subscribe(ctx, f.author.ID.String(), f.follower.ID.String(), 0)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if !res.IsSubscribed {
		t.Fatalf("subscription payload must report is_subscribed true")
	}
	if res.RecipesCount != 3 {
		t.Fatalf("expected recipes_count 3, got %d", res.RecipesCount)
	}
	if len(res.Recipes) != 3 {
		t.Fatalf("unlimited listing should hold every recipe, got %d", len(res.Recipes))
	}
}

func TestSubscribeRecipesLimitTruncatesListingOnly(t *testing.T) {
	f := newFixture(t, 3)

	res, err := f.service.Subscribe(context.Background(), f.author.ID.String(), f.follower.ID.String(), 1)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if len(res.Recipes) != 1 {
		t.Fatalf("recipes_limit=1 should truncate to one card, got %d", len(res.Recipes))
	}
	if res.RecipesCount != 3 {
		t.Fatalf("recipes_count must stay the full total, got %d", res.RecipesCount)
	}
}

func TestSubscribeToSelf(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.service.Subscribe(context.Background(), f.follower.ID.String(), f.follower.ID.String(), 0)
	if !errors.Is(err, domain.ErrSelfSubscription) {
		t.Fatalf("expected self subscription error, got %v", err)
	}
}

func TestSubscribeTwice(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	if _, err := f.service.Subscribe(ctx, f.author.ID.String(), f.follower.ID.String(), 0); err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	_, err := f.service.Subscribe(ctx, f.author.ID.String(), f.follower.ID.String(), 0)
	if !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Fatalf("expected already subscribed error, got %v", err)
	}
}

func TestSubscribeUnknownAuthor(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.service.Subscribe(context.Background(), uuid.New().String(), f.follower.ID.String(), 0)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	err := f.service.Unsubscribe(ctx, f.author.ID.String(), f.follower.ID.String())
	if !errors.Is(err, domain.ErrSubscriptionNotFound) {
		t.Fatalf("unsubscribe without subscription must fail, got %v", err)
	}

	if _, err := f.service.Subscribe(ctx, f.author.ID.String(), f.follower.ID.String(), 0); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := f.service.Unsubscribe(ctx, f.author.ID.String(), f.follower.ID.String()); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	subs, count, err := f.service.GetSubscriptions(ctx, f.follower.ID.String(), 1, 10, 0)
	if err != nil {
		t.Fatalf("get subscriptions: %v", err)
	}
	if count != 0 || len(subs) != 0 {
		t.Fatalf("expected empty listing after unsubscribe, got %d items", len(subs))
	}
}

func TestGetSubscriptions(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	if _, err := f.service.Subscribe(ctx, f.author.ID.String(), f.follower.ID.String(), 0); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	subs, count, err := f.service.GetSubscriptions(ctx, f.follower.ID.String(), 1, 10, 1)
	if err != nil {
		t.Fatalf("get subscriptions: %v", err)
	}
	if count != 1 || len(subs) != 1 {
		t.Fatalf("expected one subscription, got count=%d items=%d", count, len(subs))
	}
	if subs[0].ID != f.author.ID.String() {
		t.Fatalf("listing must project the author, got %s", subs[0].ID)
	}
	if len(subs[0].Recipes) != 1 || subs[0].RecipesCount != 2 {
		t.Fatalf("recipes_limit=1 should cap cards at one while counting all, got %d cards count=%d",
			len(subs[0].Recipes), subs[0].RecipesCount)
	}
}
