package main

import (
	"log"

	"coffeeshop/config"
	"coffeeshop/database"
	"coffeeshop/handlers"
	"coffeeshop/routes"
	"coffeeshop/storage"
	"coffeeshop/storage/memory"
	"coffeeshop/storage/postgres"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

// stores bundles the per-entity repositories behind the handlers.
type stores struct {
	users     storage.UserStore
	orders    storage.OrderStore
	customers storage.CustomerStore
	sales     storage.SalesStore
	favorites storage.FavoriteStore
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var s stores
	if cfg.DatabaseURL != "" {
		database.Connect(cfg.DatabaseURL)
		defer database.Close()

		pg := postgres.New(database.GetDB())
		s = stores{users: pg, orders: pg, customers: pg, sales: pg, favorites: pg}
	} else {
		log.Println("DATABASE_URL not set, serving from the seeded in-memory store")
		mem := memory.NewSeededStore()
		s = stores{users: mem, orders: mem, customers: mem, sales: mem, favorites: mem}
	}

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app,
		handlers.NewAuthHandler(s.users),
		handlers.NewAdminHandler(s.orders, s.customers, s.sales),
		handlers.NewUserHandler(s.users, s.favorites),
	)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
