// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a JSON error response and aborts the request
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
