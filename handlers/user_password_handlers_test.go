package handlers_test

import (
	"testing"

	"coffeeshop/models"

	"github.com/stretchr/testify/assert"
)

func TestUpdatePassword(t *testing.T) {
	app, store := newTestApp(t)
	user := createUser(t, store, "me@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "PUT", "/api/v1/users/password", bearerToken(t, user), models.UpdatePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "fresh-secret",
		ConfirmPassword: "fresh-secret",
	})
	assert.Equal(t, 200, resp.StatusCode)

	// The new password is persisted, not discarded.
	login := doJSON(t, app, "POST", "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "me@example.com",
		Password: "fresh-secret",
	})
	assert.Equal(t, 200, login.StatusCode)
}

func TestUpdatePasswordConfirmMismatch(t *testing.T) {
	app, store := newTestApp(t)
	user := createUser(t, store, "me@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "PUT", "/api/v1/users/password", bearerToken(t, user), models.UpdatePasswordRequest{
		CurrentPassword: "x",
		NewPassword:     "abcde",
		ConfirmPassword: "abcdef",
	})
	assert.Equal(t, 400, resp.StatusCode)

	fields := fieldErrors(t, decodeBody(t, resp))
	assert.Contains(t, fields, "confirmPassword")
	// The short newPassword is reported in the same response.
	assert.Contains(t, fields, "newPassword")
}

func TestUpdatePasswordTooShort(t *testing.T) {
	app, store := newTestApp(t)
	user := createUser(t, store, "me@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "PUT", "/api/v1/users/password", bearerToken(t, user), models.UpdatePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "abc",
		ConfirmPassword: "abc",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, fieldErrors(t, decodeBody(t, resp)), "newPassword")
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	app, store := newTestApp(t)
	user := createUser(t, store, "me@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "PUT", "/api/v1/users/password", bearerToken(t, user), models.UpdatePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "fresh-secret",
		ConfirmPassword: "fresh-secret",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, fieldErrors(t, decodeBody(t, resp)), "currentPassword")
}

func TestUpdatePasswordMissingCurrent(t *testing.T) {
	app, store := newTestApp(t)
	user := createUser(t, store, "me@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "PUT", "/api/v1/users/password", bearerToken(t, user), models.UpdatePasswordRequest{
		NewPassword:     "fresh-secret",
		ConfirmPassword: "fresh-secret",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, fieldErrors(t, decodeBody(t, resp)), "currentPassword")
}
