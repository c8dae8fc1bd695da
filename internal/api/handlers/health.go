package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root returns the API banner
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "BrandBot API is running! Use /health to check service status.",
	})
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "BrandBot API",
	})
}
