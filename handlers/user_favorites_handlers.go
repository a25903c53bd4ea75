package handlers

import (
	"errors"
	"fmt"
	"log"

	"coffeeshop/middleware"
	"coffeeshop/storage"

	"github.com/gofiber/fiber/v2"
)

// HandleGetFavorites returns the caller's favorited catalog items.
// GET /api/v1/users/favorites
func (h *UserHandler) HandleGetFavorites(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	favorites, err := h.Favorites.ListByUser(c.Context(), authUser.ID)
	if err != nil {
		log.Printf("Error fetching favorites for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch favorites"})
	}

	return c.JSON(fiber.Map{"favorites": favorites})
}

// HandleAddFavorite favorites a catalog item. Re-adding the same item
// returns the same success response.
// POST /api/v1/users/favorites/:itemId
func (h *UserHandler) HandleAddFavorite(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	itemID := c.Params("itemId")

	fav, err := h.Favorites.Add(c.Context(), authUser.ID, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Item not found"})
		}
		log.Printf("Error adding favorite %s for user %s: %v", itemID, authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add favorite"})
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Added %s to favorites", fav.Name)})
}

// HandleRemoveFavorite unfavorites a catalog item. Removing an item that is
// not favorited returns the same success response.
// DELETE /api/v1/users/favorites/:itemId
func (h *UserHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	itemID := c.Params("itemId")

	if err := h.Favorites.Remove(c.Context(), authUser.ID, itemID); err != nil {
		log.Printf("Error removing favorite %s for user %s: %v", itemID, authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to remove favorite"})
	}

	return c.JSON(fiber.Map{"message": "Removed item from favorites"})
}
