package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform {"message": ...} error body every
// endpoint uses. The client renders this message verbatim when present.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}
