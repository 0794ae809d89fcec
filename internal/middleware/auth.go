package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/internal/response"
	"backend/internal/token"
)

const identityKey = "identity"

// Identity is the request-scoped authenticated principal derived from a
// validated token. It lives for one request and is never shared.
type Identity struct {
	Email  string
	UserID uuid.UUID
}

// IdentityFrom returns the identity bound to the request, if any.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}

// Authenticate extracts and validates a bearer token. A missing, malformed or
// invalid token is logged and the request continues anonymous; route-level
// policy decides whether that is acceptable. The middleware itself never
// rejects a request.
func Authenticate(tokens *token.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Debug("Malformed Authorization header")
			c.Next()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			logger.Debug("Token carried a non-UUID user id", zap.Error(err))
			c.Next()
			return
		}

		c.Set(identityKey, &Identity{Email: claims.Subject, UserID: userID})
		c.Next()
	}
}

// RequireAuth rejects requests that reached a protected route without a bound
// identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}
