package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"backend/internal/models"
)

type memoryTodoRepository struct {
	mu    sync.RWMutex
	todos map[uuid.UUID]*models.Todo
}

func NewMemoryTodoRepository() TodoRepository {
	return &memoryTodoRepository{todos: make(map[uuid.UUID]*models.Todo)}
}

func (r *memoryTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = uuid.New()
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	stored := *todo
	r.todos[todo.ID] = &stored
	return nil
}

func (r *memoryTodoRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return nil, ErrTodoNotFound
	}

	copied := *todo
	return &copied, nil
}

func (r *memoryTodoRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter TodoFilter) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []*models.Todo{}
	for _, todo := range r.todos {
		if todo.UserID != userID {
			continue
		}
		if filter.Completed != nil && todo.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != nil && todo.Priority != *filter.Priority {
			continue
		}
		copied := *todo
		todos = append(todos, &copied)
	}

	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

func (r *memoryTodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return ErrTodoNotFound
	}

	existing.Name = todo.Name
	existing.Priority = todo.Priority
	existing.Completed = todo.Completed
	existing.UpdatedAt = time.Now()

	*todo = *existing
	return nil
}

func (r *memoryTodoRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[id]
	if !ok || existing.UserID != userID {
		return ErrTodoNotFound
	}

	delete(r.todos, id)
	return nil
}
