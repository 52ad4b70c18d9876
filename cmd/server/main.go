package main

import (
	"github.com/anonto42/microblog/internal/router"
	"github.com/anonto42/microblog/pkg/config"
	"github.com/anonto42/microblog/validators"
	"github.com/anonto42/microblog/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e)
	e.Use(echoprometheus.NewMiddleware("microblog"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// Rendering and validation
	e.Renderer = web.NewRenderer()
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	router.SetupRoutes(e, db, store)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
