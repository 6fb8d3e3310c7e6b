package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request and recovers from handler
// panics with a JSON 500 instead of a dropped connection.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"request_panic method=%s path=%s client_ip=%s error=%q stack=%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					err.Error(),
					string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				return
			}

			log.Printf(
				"request method=%s path=%s status=%d latency=%s client_ip=%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.Writer.Status(),
				time.Since(start),
				c.ClientIP(),
			)
		}()

		c.Next()
	}
}
