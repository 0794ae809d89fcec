package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"backend/internal/models"
)

// TodoFilter narrows ListByUser. Nil fields match everything.
type TodoFilter struct {
	Completed *bool
	Priority  *models.Priority
}

// TodoRepository persists todo items. All reads and writes are scoped to the
// owning user; a todo belonging to someone else behaves as absent.
type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter TodoFilter) ([]*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type todoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTodoRepository(db *sqlx.DB, logger *zap.Logger) TodoRepository {
	return &todoRepository{db: db, logger: logger}
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	todo.ID = uuid.New()
	query := `INSERT INTO todos (id, name, priority, completed, user_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query, todo.ID, todo.Name, todo.Priority, todo.Completed, todo.UserID).
		Scan(&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

func (r *todoRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var todo models.Todo
	query := `SELECT id, name, priority, completed, user_id, created_at, updated_at
	          FROM todos WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &todo, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to query todo: %w", err)
	}
	return &todo, nil
}

func (r *todoRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter TodoFilter) ([]*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT id, name, priority, completed, user_id, created_at, updated_at
	          FROM todos WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		query += fmt.Sprintf(" AND completed = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	todos := []*models.Todo{}
	if err := r.db.SelectContext(ctx, &todos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `UPDATE todos SET name = $1, priority = $2, completed = $3, updated_at = now()
	          WHERE id = $4 AND user_id = $5 RETURNING created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query, todo.Name, todo.Priority, todo.Completed, todo.ID, todo.UserID).
		Scan(&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
