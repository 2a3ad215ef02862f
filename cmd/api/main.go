package main

import (
	"log"
	"os"
	"time"

	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/database"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/bcm-maturity-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/bcm-maturity-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appLogger, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		appLogger.Fatal("error setting up database", "error", err)
	}

	app := fiber.New(fiber.Config{
		Concurrency:  256 * 1024,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, appLogger)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	appLogger.Info("server starting", "port", port)
	if err := app.Listen(":" + port); err != nil {
		appLogger.Fatal("server stopped", "error", err)
	}
}
