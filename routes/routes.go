package routes

import (
	"coffeeshop/handlers"
	"coffeeshop/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, admin *handlers.AdminHandler, user *handlers.UserHandler) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", auth.HandleSignup)
	authGroup.Post("/login", auth.HandleLogin)

	// --- Admin Routes ---
	adminGroup := api.Group("/admin", middleware.JWTMiddleware, middleware.AdminRequired)
	adminGroup.Get("/dashboard", admin.HandleGetDashboard)
	adminGroup.Get("/users", admin.HandleGetOrders) // legacy path; returns orders
	adminGroup.Get("/customers", admin.HandleGetCustomers)
	adminGroup.Get("/sales", admin.HandleGetSalesReport)
	adminGroup.Get("/export/:type", admin.HandleExportData)

	// --- User Routes ---
	userGroup := api.Group("/users", middleware.JWTMiddleware)
	userGroup.Get("/profile", user.HandleGetProfile)
	userGroup.Put("/profile", user.HandleUpdateProfile)
	userGroup.Put("/password", user.HandleUpdatePassword)
	userGroup.Get("/favorites", user.HandleGetFavorites)
	userGroup.Post("/favorites/:itemId", user.HandleAddFavorite)
	userGroup.Delete("/favorites/:itemId", user.HandleRemoveFavorite)
	userGroup.Delete("/account", user.HandleDeleteAccount)
}
