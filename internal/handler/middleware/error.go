package middleware

import (
	"log/slog"
	"net/http"

	"event-booking-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the most recent public error attached to the context
// as a JSON error envelope. Handlers that already wrote a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Most recent error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// CustomRecovery turns panics into 500 responses without tearing down the
// connection.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path)

			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"

			c.JSON(http.StatusInternalServerError, resp)
			c.Abort()
		}()
		c.Next()
	}
}
