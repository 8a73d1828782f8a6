package router

import (
	"log"

	"github.com/kolbenev/twitter-clone/internal/handlers"
	"github.com/kolbenev/twitter-clone/internal/middleware"
	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/kolbenev/twitter-clone/internal/repositories"
	"github.com/kolbenev/twitter-clone/internal/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, store storage.Storage) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Tweet{},
		&models.Like{},
		&models.Media{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	tweetRepo := repositories.NewPostgresTweetRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	mediaRepo := repositories.NewPostgresMediaRepository(db)

	apiKeyAuth := middleware.APIKeyAuth(userRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	tweetHandler := handlers.NewTweetHandler(tweetRepo, likeRepo, mediaRepo, userRepo, store)
	likeHandler := handlers.NewLikeHandler(likeRepo, tweetRepo)
	mediaHandler := handlers.NewMediaHandler(mediaRepo, store)

	// User lookup by id is the one anonymous endpoint
	usersPublic := e.Group("/api/users")
	userHandler.RegisterPublicRoutes(usersPublic)

	usersAuth := e.Group("/api/users", apiKeyAuth)
	userHandler.RegisterRoutes(usersAuth)
	followHandler.RegisterRoutes(usersAuth)
	log.Println("User routes configured.")

	tweets := e.Group("/api/tweets", apiKeyAuth)
	tweetHandler.RegisterRoutes(tweets)
	likeHandler.RegisterRoutes(tweets)
	log.Println("Tweet routes configured.")

	medias := e.Group("/api/medias", apiKeyAuth)
	mediaHandler.RegisterRoutes(medias)
	log.Println("Media routes configured.")

	// Locally stored blobs are served straight from disk
	if local, ok := store.(*storage.LocalStorage); ok {
		e.Static("/medias", local.Root())
		log.Println("Static media route configured.")
	}

	log.Println("All routes configured.")
}
