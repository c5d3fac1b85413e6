package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS opens the API to any origin. The scrape endpoint is called straight
// from the onboarding SPA, whose origin varies per deployment, and the
// payload carries nothing sensitive. Preflight OPTIONS requests are
// answered with 204.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-API-Key, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
