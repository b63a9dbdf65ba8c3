package domain

import (
	"errors"
)

var (
	MessageSuccessAddFavourite       = "recipe added to favourites"
	MessageSuccessRemoveFavourite    = "recipe removed from favourites"
	MessageSuccessAddShoppingCart    = "recipe added to shopping cart"
	MessageSuccessRemoveShoppingCart = "recipe removed from shopping cart"

	MessageFailedAddFavourite       = "failed to add recipe to favourites"
	MessageFailedRemoveFavourite    = "failed to remove recipe from favourites"
	MessageFailedAddShoppingCart    = "failed to add recipe to shopping cart"
	MessageFailedRemoveShoppingCart = "failed to remove recipe from shopping cart"

	ErrListEntryNotFound = errors.New("recipe is not in the list")
)
