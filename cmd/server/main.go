package main

import (
	"log"
	"net/http"
	"os"

	_ "stayspots/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stayspots/internal/auth"
	"stayspots/internal/cache"
	"stayspots/internal/config"
	"stayspots/internal/db"
	"stayspots/internal/handler"
	"stayspots/internal/model"
	"stayspots/internal/repository"
	"stayspots/internal/router"
	"stayspots/internal/service"
)

// @title StaySpots API
// @version 1.0
// @description Short-term property rental API with spots, reviews, bookings and cookie session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.ReviewImage{},
			&model.Review{},
			&model.SpotImage{},
			&model.Spot{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Spot{},
		&model.SpotImage{},
		&model.Review{},
		&model.ReviewImage{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	spotRepo := repository.NewSpotRepository(gormDB)
	spotImageRepo := repository.NewSpotImageRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	reviewImageRepo := repository.NewReviewImageRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo)
	spotService := service.NewSpotService(spotRepo, spotImageRepo, reviewRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, reviewImageRepo, spotRepo, spotImageRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, spotRepo, spotImageRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, jwtService, cfg.CookieSecure)
	spotHandler := handler.NewSpotHandler(spotService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userHandler,
		spotHandler,
		reviewHandler,
		bookingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
