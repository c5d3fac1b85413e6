package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinivoz/sitescan/api/handler"
	"github.com/clinivoz/sitescan/api/middleware"
	"github.com/clinivoz/sitescan/cache"
	"github.com/clinivoz/sitescan/config"
	"github.com/clinivoz/sitescan/content"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → CORS
//	API:     Auth (if enabled) → RateLimit
//
// CORS is global and fully open: the scrape endpoints are called directly
// from browser-side onboarding flows on arbitrary origins.
// Health is intentionally outside auth so monitoring probes always work.
func NewRouter(f handler.Fetcher, pipeline *content.Pipeline, cfg *config.Config, cc *cache.Cache, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")

	// Health — no auth required.
	v1.GET("/health", handler.Health(startTime))

	// Protected group — auth + rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	// Clinic website extraction.
	protected.POST("/scrape", handler.Scrape(f, cc, cfg.Webhook))

	// Reviewer-facing content preview.
	protected.POST("/preview", handler.Preview(f, pipeline))

	return r
}
