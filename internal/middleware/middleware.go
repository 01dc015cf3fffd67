// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"github.com/gin-gonic/gin"
)

// Logger is the request logging middleware.
func Logger() gin.HandlerFunc {
	return gin.Logger()
}

// Recovery turns panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}

// CORS allows the front-end dev servers to call the API from the browser.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Setup installs the full middleware stack.
func Setup(r *gin.Engine) {
	r.Use(Logger())
	r.Use(Recovery())
	r.Use(CORS())
}
