package models

import "github.com/golang-jwt/jwt/v4"

// JwtClaims is the payload carried in access tokens.
type JwtClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUser is the authenticated identity the JWT middleware attaches to a
// request. Handlers read it through middleware.CurrentUser instead of poking
// at raw locals.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FieldError is one entry in a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the POST /auth/signup body.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfilePreferences carries the optional preference toggles on a profile
// update. Pointers distinguish "not sent" from "set to false".
type ProfilePreferences struct {
	Notifications *bool `json:"notifications"`
	Newsletter    *bool `json:"newsletter"`
}

// UpdateProfileRequest is the PUT /users/profile body. Omitted fields keep
// their previous values.
type UpdateProfileRequest struct {
	Name        *string             `json:"name"`
	Phone       *string             `json:"phone"`
	Preferences *ProfilePreferences `json:"preferences"`
}

// UpdatePasswordRequest is the PUT /users/password body.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// DeleteAccountRequest is the DELETE /users/account body.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// ProfileUpdate is the storage-level patch applied by UpdateProfile. Nil
// fields are left untouched.
type ProfileUpdate struct {
	Name          *string
	Phone         *string
	Notifications *bool
	Newsletter    *bool
}
