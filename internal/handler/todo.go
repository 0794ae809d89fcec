package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/internal/middleware"
	"backend/internal/models"
	"backend/internal/repository"
	"backend/internal/response"
	"backend/internal/service"
	"backend/internal/validation"
)

type TodoHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type todoHandler struct {
	todoService service.TodoService
	logger      *zap.Logger
}

func NewTodoHandler(todoService service.TodoService, logger *zap.Logger) TodoHandler {
	return &todoHandler{todoService: todoService, logger: logger}
}

type TodoRequest struct {
	Name      string `json:"name" binding:"required"`
	Priority  string `json:"priority" binding:"required,oneof=low medium high"`
	Completed *bool  `json:"completed"`
}

// Create handles POST /todo. The owner is the authenticated identity.
func (h *todoHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, validation.PasswordPolicy{})
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), identity.UserID, service.TodoInput{
		Name:      req.Name,
		Priority:  models.Priority(req.Priority),
		Completed: req.Completed,
	})
	if err != nil {
		h.logger.Error("Failed to create todo", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// Get handles GET /todo/:id.
func (h *todoHandler) Get(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			response.Error(c, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("Failed to get todo", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// List handles GET /todo with optional completed and priority filters.
func (h *todoHandler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var filter repository.TodoFilter
	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid completed filter")
			return
		}
		filter.Completed = &completed
	}
	if raw := c.Query("priority"); raw != "" {
		priority := models.Priority(raw)
		if !priority.Valid() {
			response.Error(c, http.StatusBadRequest, "Invalid priority filter")
			return
		}
		filter.Priority = &priority
	}

	todos, err := h.todoService.List(c.Request.Context(), identity.UserID, filter)
	if err != nil {
		h.logger.Error("Failed to list todos", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Update handles PUT /todo/:id.
func (h *todoHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, validation.PasswordPolicy{})
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, identity.UserID, service.TodoInput{
		Name:      req.Name,
		Priority:  models.Priority(req.Priority),
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			response.Error(c, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("Failed to update todo", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /todo/:id.
func (h *todoHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), id, identity.UserID); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			response.Error(c, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("Failed to delete todo", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
