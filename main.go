package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"card-service/pkg/api"
	"card-service/pkg/artwork"
	"card-service/pkg/config"
	"card-service/pkg/export"
	"card-service/pkg/genai"
	"card-service/pkg/layout"
	"card-service/pkg/session"
	"card-service/pkg/thumb"
)

func main() {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	srv := &api.Server{
		Exporter:    export.New(export.NewChromeRasterizer()),
		Thumbs:      &thumb.Renderer{FontPath: cfg.FontPath},
		AI:          genai.NewClient(cfg.GeminiAPIKey),
		Artwork:     artwork.NewSearcher(),
		Sessions:    session.NewMemoryStore(cfg.AICooldown),
		Transitions: layout.NewTypeTransition(),
		MobileScale: cfg.MobileScale,
	}

	r := gin.Default()

	// Global Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	// Root Endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "online",
			"service": "Card Creator Service",
			"version": "1.0.0",
		})
	})

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv.Register(r.Group("/api"))

	log.Printf("🚀 Card service starting on port %s", cfg.Port)
	// Bind to 0.0.0.0 explicitly for cloud platforms
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
