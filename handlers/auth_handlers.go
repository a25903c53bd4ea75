package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"coffeeshop/config"
	"coffeeshop/models"
	"coffeeshop/storage"
	"coffeeshop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	Users storage.UserStore
}

// NewAuthHandler builds an AuthHandler over a user store.
func NewAuthHandler(users storage.UserStore) *AuthHandler {
	return &AuthHandler{Users: users}
}

// HandleSignup registers a new customer account and returns an access token.
// POST /api/v1/auth/signup
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	var fieldErrors []models.FieldError
	if !utils.IsValidName(req.Name) {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if !utils.IsValidEmail(req.Email) {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "email", Message: "A valid email is required"})
	}
	if len(req.Password) < utils.MinPasswordLength {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "errors": fieldErrors})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for signup %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not process password"})
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  models.RoleCustomer,
		Preferences: models.Preferences{
			Notifications: true,
			Newsletter:    false,
		},
	}

	if err := h.Users.Create(c.Context(), &user, string(hashedPassword)); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "An account with this email already exists"})
		}
		log.Printf("Error creating user %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not create account"})
	}

	token, err := createJWT(&user)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not sign token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"accessToken": token, "user": user})
}

// HandleLogin authenticates a user and returns an access token.
// POST /api/v1/auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password are required"})
	}

	user, passwordHash, err := h.Users.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}
		log.Printf("Error looking up user %s during login: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Login failed"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	token, err := createJWT(user)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not sign token"})
	}

	return c.JSON(fiber.Map{"accessToken": token, "user": user})
}

func createJWT(user *models.User) (string, error) {
	claims := models.JwtClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
