package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/rcatalasan0/491-Project/config"
	"github.com/rcatalasan0/491-Project/db"
	"github.com/rcatalasan0/491-Project/internal/audit"
	authhandler "github.com/rcatalasan0/491-Project/internal/auth/handler"
	authrepo "github.com/rcatalasan0/491-Project/internal/auth/repository/postgres"
	authservice "github.com/rcatalasan0/491-Project/internal/auth/service"
	"github.com/rcatalasan0/491-Project/internal/ratelimit"
	"github.com/rcatalasan0/491-Project/internal/stocks/cache"
	stockdomain "github.com/rcatalasan0/491-Project/internal/stocks/domain"
	stockhandler "github.com/rcatalasan0/491-Project/internal/stocks/handler"
	stockrepo "github.com/rcatalasan0/491-Project/internal/stocks/repository/postgres"
	stockservice "github.com/rcatalasan0/491-Project/internal/stocks/service"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to set up database: %v", err)
	}
	defer pool.Close()

	userRepo := authrepo.NewPostgresRepository(pool)
	auditRecorder := audit.NewPostgresRecorder(pool)
	limiter := ratelimit.New(cfg.LoginMaxAttempts, time.Duration(cfg.LoginWindowSeconds)*time.Second)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	userService := authservice.NewUserService(userRepo, tokenService, limiter, auditRecorder, cfg)
	authHandler := authhandler.NewAuthHandler(userService, tokenService)

	var forecastCache stockdomain.ForecastCache = cache.NopCache{}
	if cfg.RedisAddr != "" {
		forecastCache = cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	stockRepo := stockrepo.NewPostgresRepository(pool)
	forecastService := stockservice.NewForecastService(stockRepo, forecastCache, cfg)
	stockHandler := stockhandler.NewStockHandler(forecastService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	authhandler.RegisterRoutes(app, authHandler)
	stockhandler.RegisterRoutes(app, stockHandler, authHandler.RequireAuth())

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
