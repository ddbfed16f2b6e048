package main

import (
	"log"

	"smartlearn/backend/config"
	"smartlearn/backend/middleware"
	"smartlearn/backend/routes"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Load the data document; a missing or broken file degrades to an empty
	// dataset (logged above), matching how the dashboard behaves.
	dataStore := store.LoadOrEmpty(cfg.DataFile, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, dataStore, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
