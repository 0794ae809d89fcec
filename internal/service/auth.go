package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"backend/internal/crypto"
	"backend/internal/models"
	"backend/internal/repository"
	"backend/internal/token"
)

var (
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenResponse is the body returned by both signup and login.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*TokenResponse, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *token.Service, logger *zap.Logger) AuthService {
	return &authService{users: users, tokens: tokens, logger: logger}
}

// SignUp creates a user and mints a token for it. The repository's unique
// email constraint backs the pre-check, so a concurrent duplicate fails at
// insert time and is reported the same way. On any failure no user row
// remains.
func (s *authService) SignUp(ctx context.Context, name, email, password string) (*TokenResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User signed up", zap.String("email", user.Email))
	return s.mintToken(user)
}

// Login verifies credentials and mints a token. Unknown email and wrong
// password take different branches but converge on ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", zap.String("email", user.Email))
	return s.mintToken(user)
}

func (s *authService) mintToken(user *models.User) (*TokenResponse, error) {
	tokenString, err := s.tokens.Issue(user.Email, user.ID.String())
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &TokenResponse{
		Token:     tokenString,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
	}, nil
}
