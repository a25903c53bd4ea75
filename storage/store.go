// Package storage defines the persistence boundary behind the HTTP handlers.
// Handlers depend only on these interfaces, so any engine can back the API
// without touching the HTTP contract.
package storage

import (
	"context"
	"errors"
	"time"

	"coffeeshop/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore manages user profiles and credentials.
type UserStore interface {
	// GetByID returns the profile for a user.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail returns the profile and stored password hash for a user,
	// for credential checks at login.
	GetByEmail(ctx context.Context, email string) (*models.User, string, error)

	// Create inserts a new user with the given password hash. Returns
	// ErrAlreadyExists if the email is taken.
	Create(ctx context.Context, user *models.User, passwordHash string) error

	// UpdateProfile applies a partial update and returns the merged record.
	// Nil fields in the patch keep their previous values.
	UpdateProfile(ctx context.Context, id string, patch models.ProfileUpdate) (*models.User, error)

	// PasswordHash returns the stored hash for a user.
	PasswordHash(ctx context.Context, id string) (string, error)

	// UpdatePassword replaces the stored hash for a user.
	UpdatePassword(ctx context.Context, id string, hash string) error

	// RequestDeletion marks an account for asynchronous deletion.
	RequestDeletion(ctx context.Context, id string) error
}

// OrderStore exposes the admin view of placed orders.
type OrderStore interface {
	// ListOrders returns one page of orders, optionally filtered by status,
	// plus the total count matching the filter.
	ListOrders(ctx context.Context, status string, page, limit int) ([]models.Order, int, error)
}

// CustomerStore exposes the admin view of storefront customers.
type CustomerStore interface {
	ListCustomers(ctx context.Context, page, limit int) ([]models.Customer, error)
}

// SalesStore aggregates order data for the admin dashboard and reports.
type SalesStore interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Report aggregates sales between start and end. Either bound may be
	// nil, leaving that side of the range open.
	Report(ctx context.Context, start, end *time.Time) (*models.SalesReport, error)
}

// FavoriteStore manages per-user favorite catalog items.
type FavoriteStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.FavoriteItem, error)

	// Add favorites a catalog item for a user. Adding an already-favorited
	// item is a no-op returning the existing entry.
	Add(ctx context.Context, userID, itemID string) (*models.FavoriteItem, error)

	// Remove unfavorites a catalog item. Removing an absent entry is a no-op.
	Remove(ctx context.Context, userID, itemID string) error
}
