package response

import "github.com/gin-gonic/gin"

// The dashboard consumes bare JSON payloads, so success responses go out
// as-is; only failures share a body shape.

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

func ErrorWithMessage(c *gin.Context, statusCode int, errText string, message string) {
	c.JSON(statusCode, gin.H{
		"error":   errText,
		"message": message,
	})
}

func ValidationError(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}
