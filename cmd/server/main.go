package main

import (
	"log"

	"github.com/kolbenev/twitter-clone/internal/router"
	"github.com/kolbenev/twitter-clone/internal/storage"
	"github.com/kolbenev/twitter-clone/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure the connection is closed when main exits

	// Initialize blob storage
	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, store)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
