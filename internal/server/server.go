// Package server provides HTTP server setup and configuration.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sebasr/cloud-compute-demo/internal/auth"
	"github.com/sebasr/cloud-compute-demo/internal/config"
	"github.com/sebasr/cloud-compute-demo/internal/handlers"
	"github.com/sebasr/cloud-compute-demo/internal/middleware"
)

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(middleware.RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config *config.Config
	Logger zerolog.Logger
}

// New creates a new Gin router with all greeting service routes configured
func New(deps *Dependencies) *gin.Engine {
	// Release mode disables gin's debug route dump and ANSI colors
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(middleware.RequestLogger(deps.Logger, "/health"))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimitMiddleware(int64(deps.Config.Server.RateLimitPerMinute), time.Minute))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	router.GET("/", handlers.HelloHandler)
	router.GET("/health", handlers.HealthHandler("greeting-service"))

	greetingChain := []gin.HandlerFunc{}
	if deps.Config.Auth.AuthEnabled() {
		tokens := auth.NewTokenService(deps.Config.Auth.TokenSecret, deps.Config.Auth.TokenTTL)
		greetingChain = append(greetingChain, middleware.NewAuthMiddleware(tokens).Required())
	}
	greetingChain = append(greetingChain, handlers.GreetingHandler)

	api := router.Group("/api")
	api.POST("/hello", greetingChain...)

	return router
}
