package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"backend/internal/response"
)

// Recovery converts panics into the generic structured 500 body. The cause is
// logged but never reaches the client.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered", zap.Any("panic", recovered))
		response.AbortError(c, http.StatusInternalServerError, "An unexpected error occurred")
	})
}
