package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"backend/internal/models"
)

// ErrInvalidToken is returned for every validation failure: bad signature,
// malformed structure, wrong signing method, expiry. Callers cannot tell the
// cases apart from the result; the reason only goes to the debug log.
var ErrInvalidToken = errors.New("invalid token")

// Service issues and validates HS256-signed bearer tokens. Secret and TTL are
// fixed at construction, so concurrent Issue/Validate calls need no locking.
type Service struct {
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(secret []byte, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{secret: secret, ttl: ttl, logger: logger}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue mints a token with subject=email, a userId claim, issued-at now and
// expiry now+TTL (second-granularity Unix timestamps).
func (s *Service) Issue(email, userID string) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks signature, structure and expiry. On success it returns the
// decoded claims; on any failure it returns ErrInvalidToken.
func (s *Service) Validate(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		s.logger.Debug("Token validation failed", zap.Error(err))
		return nil, ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
