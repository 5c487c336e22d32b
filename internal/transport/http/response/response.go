package response

import "github.com/gin-gonic/gin"

// Every failure on the wire is {"error": message} plus a status code;
// handlers emit success payloads directly.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

func AbortError(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{"error": message})
}
