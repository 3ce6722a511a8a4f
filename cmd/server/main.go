package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	config "github.com/vyrade/postlog/configs"
	"github.com/vyrade/postlog/internal/api/handlers"
	"github.com/vyrade/postlog/internal/database"
	"github.com/vyrade/postlog/internal/repository"
	"github.com/vyrade/postlog/internal/service"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	brandRepo := repository.NewBrandRepository(db)
	instagramTiktokRepo := repository.NewInstagramTiktokRepository(db)
	linkedinTwitterRepo := repository.NewLinkedinTwitterRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	brandService := service.NewBrandService(brandRepo)
	instagramTiktokService := service.NewInstagramTiktokService(instagramTiktokRepo, brandRepo)
	linkedinTwitterService := service.NewLinkedinTwitterService(linkedinTwitterRepo, brandRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	handlers.RegisterRoutes(app,
		handlers.NewBrandHandler(brandService),
		handlers.NewInstagramTiktokHandler(instagramTiktokService),
		handlers.NewLinkedinTwitterHandler(linkedinTwitterService),
		handlers.NewDashboardHandler(dashboardService),
	)

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	slog.Info("server is running", "port", cfg.ServerPort)

	gracefulShutdown(app, db)
}

func gracefulShutdown(app *fiber.App, db *sqlx.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	slog.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	if err := db.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
	slog.Info("server shutdown complete")
}
