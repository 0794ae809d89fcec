// Package response renders the structured error bodies shared by handlers and
// middleware: {timestamp, status, error, message, path}.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func body(c *gin.Context, status int) gin.H {
	return gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    status,
		"error":     http.StatusText(status),
		"path":      c.Request.URL.Path,
	}
}

// Error writes a structured error body with the given status and message.
func Error(c *gin.Context, status int, message string) {
	b := body(c, status)
	b["message"] = message
	c.JSON(status, b)
}

// AbortError writes a structured error body and aborts the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	b := body(c, status)
	b["message"] = message
	c.AbortWithStatusJSON(status, b)
}

// ValidationError writes a 400 body carrying a field -> message map.
func ValidationError(c *gin.Context, fieldErrors map[string]string) {
	b := body(c, http.StatusBadRequest)
	b["errors"] = fieldErrors
	c.JSON(http.StatusBadRequest, b)
}

// InternalError writes the generic 500 body without leaking internals.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "An unexpected error occurred")
}
