package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"promptlink/internal/cache"
	"promptlink/internal/config"
	"promptlink/internal/database"
	"promptlink/internal/handler"
	"promptlink/internal/ratelimit"
	"promptlink/internal/repository"
	"promptlink/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	logrus.WithField("mode", cfg.App.Mode).Info("starting promptlink")

	store, db, redisClient := buildStore(cfg)
	if db != nil {
		defer db.Close()
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	linkService := service.NewLinkService(store, cfg.App.Mode, cfg.App.BaseURL)
	limiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowMs)
	linkHandler := handler.NewLinkHandler(linkService, limiter)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(linkHandler, healthHandler(cfg, db, redisClient))

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logrus.WithField("address", cfg.GetServerAddress()).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server stopped")
}

// buildStore selects the link store once, from the resolved mode. After this
// point no code branches on the mode for storage decisions.
func buildStore(cfg *config.Config) (repository.LinkStore, *sql.DB, *cache.RedisClient) {
	if !cfg.IsProduction() {
		logrus.Info("demo mode: links are encoded in the URL, nothing is persisted")
		return repository.NewEphemeralLinkStore(), nil, nil
	}

	if cfg.Database.URL == "" {
		// Production without a datastore still serves; every link
		// operation reports the missing configuration instead.
		logrus.Warn("production mode without DATABASE_URL: link operations will fail until one is set")
		return repository.NewUnconfiguredLinkStore(), nil, nil
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}
	logrus.Info("connected to database")

	var store repository.LinkStore = repository.NewPostgresLinkStore(db)

	if cfg.Redis.Host == "" {
		return store, db, nil
	}

	redisClient, err := cache.NewRedisClient(cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		CacheTTL:     cfg.Redis.CacheTTL,
	})
	if err != nil {
		logrus.WithError(err).Warn("failed to connect to redis, running without cache")
		return store, db, nil
	}
	logrus.Info("connected to redis")

	return repository.NewCachedLinkStore(store, redisClient), db, redisClient
}

func healthHandler(cfg *config.Config, db *sql.DB, redisClient *cache.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status": "healthy",
			"mode":   cfg.App.Mode,
			"services": gin.H{
				"database": "disabled",
				"cache":    "disabled",
			},
		}
		services := response["services"].(gin.H)

		if db != nil {
			if err := database.HealthCheck(db); err != nil {
				services["database"] = "unhealthy"
				response["status"] = "degraded"
			} else {
				services["database"] = "healthy"
			}
		}

		if redisClient != nil {
			if err := redisClient.HealthCheck(c.Request.Context()); err != nil {
				services["cache"] = "unhealthy"
				response["status"] = "degraded"
			} else {
				services["cache"] = "healthy"
			}
		}

		statusCode := http.StatusOK
		if response["status"] == "degraded" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, response)
	}
}
