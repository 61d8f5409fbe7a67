package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/config"
	"github.com/pushp314/stenpan-backend/internal/database"
	"github.com/pushp314/stenpan-backend/internal/middleware"
	"github.com/pushp314/stenpan-backend/internal/models"
	"github.com/pushp314/stenpan-backend/internal/routes"
	"github.com/pushp314/stenpan-backend/internal/services"
	"github.com/pushp314/stenpan-backend/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Stenpan Economy Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Build and validate the economy catalog. A broken reward table is a
	// deploy-time fault, not something to discover on a user's claim.
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Catalog validation failed")
	}
	services.Catalog = cat

	// 2. Connect Database & Redis
	database.Connect()
	database.InitRedis()

	// Catalog data may change between deploys under the same cache key.
	if err := database.CacheInvalidate("catalog:*"); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate catalog cache")
	}

	logger.Info().Msg("Running database migrations...")
	if err := database.DB.AutoMigrate(&models.Snapshot{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate snapshot table")
	}
	logger.Info().Msg("Database migrations complete")

	// 3. Setup Router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// 4. Register Routes
	api := r.Group("/api")
	api.Use(middleware.ProfileMiddleware())
	{
		routes.RegisterProfileRoutes(api)
		routes.RegisterProgressionRoutes(api)
		routes.RegisterStoreRoutes(api)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "disabled"
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	})

	// 5. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	middleware.GeneralLimiter.Stop()
	middleware.ActionLimiter.Stop()

	logger.Info().Msg("Server exited gracefully")
}
