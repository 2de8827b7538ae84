// controllers/health.go
package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health handles GET /api/health
func Health(c *gin.Context) {
	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(startedAt).Seconds(),
		"environment": environment,
	})
}
