package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffeeshop/config"
	"coffeeshop/handlers"
	"coffeeshop/models"
	"coffeeshop/routes"
	"coffeeshop/storage/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret"
	testPassword = "password123"
)

// newTestApp wires the full route table over a seeded in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	config.AppConfig.JWTSecret = testSecret

	store := memory.NewSeededStore()
	app := fiber.New()
	routes.SetupRoutes(app,
		handlers.NewAuthHandler(store),
		handlers.NewAdminHandler(store, store, store),
		handlers.NewUserHandler(store, store),
	)
	return app, store
}

// createUser inserts a user with the shared test password and returns it.
func createUser(t *testing.T, store *memory.Store, email, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Name:  "Test User",
		Email: email,
		Role:  role,
		Preferences: models.Preferences{
			Notifications: true,
		},
	}
	if err := store.Create(context.Background(), &user, string(hash)); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// bearerToken signs an access token for a user with the test secret.
func bearerToken(t *testing.T, user models.User) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	return resp
}

// decodeBody reads a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

// fieldErrors extracts the failing field names from a 400 response body.
func fieldErrors(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	raw, ok := body["errors"].([]interface{})
	if !ok {
		t.Fatalf("expected errors list in body, got %v", body)
	}
	var fields []string
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected error entry %v", entry)
		}
		fields = append(fields, m["field"].(string))
	}
	return fields
}
