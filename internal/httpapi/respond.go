package httpapi

import "github.com/gin-gonic/gin"

// RespondError writes the single error shape and stops the handler chain.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
