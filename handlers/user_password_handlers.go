package handlers

import (
	"errors"
	"log"

	"coffeeshop/middleware"
	"coffeeshop/models"
	"coffeeshop/storage"
	"coffeeshop/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// passwordChangeCost is the bcrypt work factor for password changes. Higher
// than the signup default on purpose.
const passwordChangeCost = 12

// HandleUpdatePassword verifies the current password and replaces it.
// PUT /api/v1/users/password
func (h *UserHandler) HandleUpdatePassword(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req models.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	var fieldErrors []models.FieldError
	if req.CurrentPassword == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "currentPassword", Message: "Current password is required"})
	}
	if len(req.NewPassword) < utils.MinPasswordLength {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "newPassword", Message: "New password must be at least 6 characters"})
	}
	if req.ConfirmPassword != req.NewPassword {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "confirmPassword", Message: "Password confirmation does not match"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "errors": fieldErrors})
	}

	currentHash, err := h.Users.PasswordHash(c.Context(), authUser.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Account not found"})
		}
		log.Printf("Error fetching password hash for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(req.CurrentPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  []models.FieldError{{Field: "currentPassword", Message: "Current password is incorrect"}},
		})
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordChangeCost)
	if err != nil {
		log.Printf("Error hashing new password for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update password"})
	}

	if err := h.Users.UpdatePassword(c.Context(), authUser.ID, string(newHash)); err != nil {
		log.Printf("Error storing new password for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
