// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError sends the standard failure envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// RespondWithValidationErrors sends a 400 with per-field details.
func RespondWithValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(400, gin.H{
		"success": false,
		"errors":  errs,
	})
}
