package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/internal/models"
	"backend/internal/repository"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoInput carries the mutable todo fields from create/update requests. The
// owner always comes from the authenticated identity, never from the body.
type TodoInput struct {
	Name      string
	Priority  models.Priority
	Completed *bool
}

type TodoService interface {
	Create(ctx context.Context, userID uuid.UUID, input TodoInput) (*models.Todo, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)
	List(ctx context.Context, userID uuid.UUID, filter repository.TodoFilter) ([]*models.Todo, error)
	Update(ctx context.Context, id, userID uuid.UUID, input TodoInput) (*models.Todo, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type todoService struct {
	todos  repository.TodoRepository
	logger *zap.Logger
}

func NewTodoService(todos repository.TodoRepository, logger *zap.Logger) TodoService {
	return &todoService{todos: todos, logger: logger}
}

func (s *todoService) Create(ctx context.Context, userID uuid.UUID, input TodoInput) (*models.Todo, error) {
	todo := &models.Todo{
		Name:     input.Name,
		Priority: input.Priority,
		UserID:   userID,
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.todos.Create(ctx, todo); err != nil {
		s.logger.Error("Failed to create todo", zap.Error(err))
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, ErrTodoNotFound
		}
		s.logger.Error("Failed to get todo", zap.Error(err))
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) List(ctx context.Context, userID uuid.UUID, filter repository.TodoFilter) ([]*models.Todo, error) {
	todos, err := s.todos.ListByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list todos", zap.Error(err))
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *todoService) Update(ctx context.Context, id, userID uuid.UUID, input TodoInput) (*models.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, ErrTodoNotFound
		}
		s.logger.Error("Failed to load todo for update", zap.Error(err))
		return nil, fmt.Errorf("failed to load todo: %w", err)
	}

	todo.Name = input.Name
	todo.Priority = input.Priority
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.todos.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, ErrTodoNotFound
		}
		s.logger.Error("Failed to update todo", zap.Error(err))
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	err := s.todos.Delete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return ErrTodoNotFound
		}
		s.logger.Error("Failed to delete todo", zap.Error(err))
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
