package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ethanbaker/pokedex/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/ethanbaker/pokedex/internal/api/modules/health"
	pokemon_module "github.com/ethanbaker/pokedex/internal/api/modules/pokemon"
)

// NewEngine builds the gin engine with all app level settings and routes
func NewEngine(cfg *utils.Config) *gin.Engine {
	engine := gin.Default()
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)
	pokemon_module.RegisterRoutes(baseGroup)

	return engine
}

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	// Initialize module services
	if err := pokemon_module.Init(cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize pokemon module: ", err)
	}

	engine := NewEngine(cfg)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
