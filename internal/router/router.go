package router

import (
	"github.com/anonto42/microblog/internal/handlers"
	"github.com/anonto42/microblog/internal/middleware"
	"github.com/anonto42/microblog/internal/models"
	"github.com/anonto42/microblog/internal/repositories"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, store sessions.Store) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Like{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate models: %v", err)
	}
	logrus.Info("Auto-migrations completed for all models")

	e.Use(session.Middleware(store))

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(e)
	logrus.Info("Auth routes configured")

	// --- Protected routes (require a login session) ---
	app := e.Group("", middleware.SessionAuthMiddleware())
	app.GET("/", authHandler.Index)

	postHandler := handlers.NewPostHandler(postRepo, likeRepo)
	postHandler.RegisterPostRoutes(app)
	logrus.Info("Post routes configured")

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(app)
	logrus.Info("Like routes configured")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(app)
	logrus.Info("Follow routes configured")

	// Profile routes go last: /:username/ must not shadow the static paths
	userHandler := handlers.NewUserHandler(userRepo, postRepo, followRepo, likeRepo)
	userHandler.RegisterProfileRoutes(app)
	logrus.Info("Profile routes configured")

	logrus.Info("All routes configured")
}
