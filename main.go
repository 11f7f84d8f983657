package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"farm-market-api/config"
	"farm-market-api/handlers"
	"farm-market-api/routes"
	"farm-market-api/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	gin.SetMode(cfg.GinMode)

	// All state lives here, in memory; it vanishes when the process ends.
	st, err := store.New(log)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed store")
	}

	h := handlers.New(st, cfg, log)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Farm Market API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🌾 Welcome to the Farm Market API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"customer", "farmer", "driver"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h, cfg.JWTSecret)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
