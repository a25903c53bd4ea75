package handlers_test

import (
	"testing"

	"coffeeshop/models"

	"github.com/stretchr/testify/assert"
)

func TestSignupCreatesCustomer(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/signup", "", models.SignupRequest{
		Name:     "New Customer",
		Email:    "new@example.com",
		Password: "secret-pass",
	})
	assert.Equal(t, 201, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["accessToken"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "customer", user["role"])
	assert.Equal(t, "new@example.com", user["email"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, store := newTestApp(t)
	createUser(t, store, "taken@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "POST", "/api/v1/auth/signup", "", models.SignupRequest{
		Name:     "Someone Else",
		Email:    "taken@example.com",
		Password: "secret-pass",
	})
	assert.Equal(t, 409, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/signup", "", models.SignupRequest{
		Name:     "X",
		Email:    "not-an-email",
		Password: "abc",
	})
	assert.Equal(t, 400, resp.StatusCode)

	fields := fieldErrors(t, decodeBody(t, resp))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLoginSuccess(t *testing.T) {
	app, store := newTestApp(t)
	createUser(t, store, "login@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "login@example.com",
		Password: testPassword,
	})
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, decodeBody(t, resp)["accessToken"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, store := newTestApp(t)
	createUser(t, store, "login@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "ghost@example.com",
		Password: testPassword,
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginTokenAuthenticatesRequests(t *testing.T) {
	app, store := newTestApp(t)
	createUser(t, store, "round@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "round@example.com",
		Password: testPassword,
	})
	assert.Equal(t, 200, resp.StatusCode)
	token := decodeBody(t, resp)["accessToken"].(string)

	profile := doJSON(t, app, "GET", "/api/v1/users/profile", "Bearer "+token, nil)
	assert.Equal(t, 200, profile.StatusCode)
}
