package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"backend/internal/response"
	"backend/internal/service"
	"backend/internal/validation"
)

type AuthHandler interface {
	SignUp(c *gin.Context)
	Login(c *gin.Context)
	Health(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	policy      validation.PasswordPolicy
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, policy validation.PasswordPolicy, logger *zap.Logger) AuthHandler {
	return &authHandler{authService: authService, policy: policy, logger: logger}
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp handles POST /auth/signup.
func (h *authHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, h.policy)
		return
	}

	tokenResponse, err := h.authService.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.Error(c, http.StatusConflict, "Email already exists")
			return
		}
		h.logger.Error("Signup failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse)
}

// Login handles POST /auth/login. Unknown email and wrong password share one
// response path, so their bodies are byte-identical.
func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, h.policy)
		return
	}

	tokenResponse, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, tokenResponse)
}

// Health handles GET /auth/health, exempt from authentication.
func (h *authHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Auth service is healthy")
}
