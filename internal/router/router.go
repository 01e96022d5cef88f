package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/threadline-app/backend/internal/handlers"
	"github.com/threadline-app/backend/internal/middleware"
	"github.com/threadline-app/backend/internal/models"
	"github.com/threadline-app/backend/internal/repositories"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil, in which case the identity endpoint is
// not registered and the comment API runs without it.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	api := e.Group("/api")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, likeRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Identity routes (require a verified Firebase ID token)
	if firebaseAuthClient != nil {
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
		authHandler := handlers.NewAuthHandler(userRepo)
		authHandler.RegisterAuthRoutes(authGroup)
		log.Println("Auth routes configured.")
	} else {
		log.Println("Firebase auth client not configured, skipping auth routes.")
	}

	log.Println("All routes configured.")
}
