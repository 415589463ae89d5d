package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps per-visitor responses, such as the saved search conditions, out of shared caches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Vary", "Cookie")
		c.Next()
	}
}
