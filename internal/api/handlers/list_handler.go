package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/api/presenters"
	"Foodgram-Backend/pkg/list"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ListHandler interface {
		AddFavourite(c *fiber.Ctx) error
		RemoveFavourite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
		DownloadShoppingCart(c *fiber.Ctx) error
	}

	listHandler struct {
		favouriteService list.ListService[entities.FavouriteList]
		shoppingService  list.ListService[entities.ShoppingList]
		cartService      list.CartService
	}
)

func NewListHandler(
	favouriteService list.ListService[entities.FavouriteList],
	shoppingService list.ListService[entities.ShoppingList],
	cartService list.CartService,
) ListHandler {
	return &listHandler{
		favouriteService: favouriteService,
		shoppingService:  shoppingService,
		cartService:      cartService,
	}
}

func listErrorStatus(err error) int {
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *listHandler) AddFavourite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.favouriteService.Add(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedAddFavourite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFavourite)
}

func (h *listHandler) RemoveFavourite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.favouriteService.Remove(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedRemoveFavourite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavourite)
}

func (h *listHandler) AddToShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.shoppingService.Add(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedAddShoppingCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingCart)
}

func (h *listHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.shoppingService.Remove(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, listErrorStatus(err), domain.MessageFailedRemoveShoppingCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveShoppingCart)
}

func (h *listHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	content, err := h.cartService.DownloadShoppingCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDownloadShopping, err)
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename=shopping_list.txt")
	return c.SendString(content)
}
