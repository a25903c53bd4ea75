package handlers

import (
	"errors"
	"log"

	"coffeeshop/middleware"
	"coffeeshop/models"
	"coffeeshop/storage"

	"github.com/gofiber/fiber/v2"
)

// HandleDeleteAccount marks the caller's account for deletion. The deletion
// itself runs out of band; this endpoint only initiates it.
// DELETE /api/v1/users/account
func (h *UserHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req models.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  []models.FieldError{{Field: "password", Message: "Password is required"}},
		})
	}

	if err := h.Users.RequestDeletion(c.Context(), authUser.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Account not found"})
		}
		log.Printf("Error initiating account deletion for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete account"})
	}

	return c.JSON(fiber.Map{"message": "Account deletion initiated"})
}
