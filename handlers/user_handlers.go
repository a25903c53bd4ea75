package handlers

import "coffeeshop/storage"

// UserHandler serves the profile and favorites surface for the
// authenticated caller.
type UserHandler struct {
	Users     storage.UserStore
	Favorites storage.FavoriteStore
}

// NewUserHandler builds a UserHandler over the user-facing stores.
func NewUserHandler(users storage.UserStore, favorites storage.FavoriteStore) *UserHandler {
	return &UserHandler{Users: users, Favorites: favorites}
}
