package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore marks every fragment response as uncacheable; the controllers
// own the only authoritative copy of the view state.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
