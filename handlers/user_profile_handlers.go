package handlers

import (
	"errors"
	"log"
	"strings"

	"coffeeshop/middleware"
	"coffeeshop/models"
	"coffeeshop/storage"
	"coffeeshop/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetProfile returns the caller's own profile.
// GET /api/v1/users/profile
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	user, err := h.Users.GetByID(c.Context(), authUser.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Profile not found"})
		}
		log.Printf("Error fetching profile for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{"user": user})
}

// HandleUpdateProfile applies a partial profile update. Omitted fields keep
// their previous values.
// PUT /api/v1/users/profile
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	authUser, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	var fieldErrors []models.FieldError
	if req.Name != nil && !utils.IsValidName(*req.Name) {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if req.Phone != nil && !utils.IsValidPhone(*req.Phone) {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "phone", Message: "Please provide a valid phone number"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "errors": fieldErrors})
	}

	patch := models.ProfileUpdate{Phone: req.Phone}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		patch.Name = &trimmed
	}
	if req.Preferences != nil {
		patch.Notifications = req.Preferences.Notifications
		patch.Newsletter = req.Preferences.Newsletter
	}

	user, err := h.Users.UpdateProfile(c.Context(), authUser.ID, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Profile not found"})
		}
		log.Printf("Error updating profile for user %s: %v", authUser.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully", "user": user})
}
