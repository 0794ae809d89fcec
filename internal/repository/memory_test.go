package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/models"
)

func TestMemoryUserRepositoryUniqueEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first := &models.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := &models.User{Name: "B", Email: "a@x.com", PasswordHash: "h"}
	assert.ErrorIs(t, repo.Create(ctx, second), ErrEmailExists)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", found.Name)

	exists, err := repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepositoryEmailCaseSensitive(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "A", Email: "a@x.com"}))
	// Emails are unique as stored; a different casing is a different email.
	require.NoError(t, repo.Create(ctx, &models.User{Name: "B", Email: "A@x.com"}))
}

func TestMemoryUserRepositoryConcurrentCreate(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Create(ctx, &models.User{Name: "A", Email: "race@x.com"})
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrEmailExists)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemoryTodoRepositoryCRUD(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	owner := uuid.New()

	todo := &models.Todo{Name: "buy milk", Priority: models.PriorityLow, UserID: owner}
	require.NoError(t, repo.Create(ctx, todo))
	require.NotEqual(t, uuid.Nil, todo.ID)
	assert.False(t, todo.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, todo.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Name)

	got.Name = "buy oat milk"
	got.Completed = true
	require.NoError(t, repo.Update(ctx, got))
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	updated, err := repo.GetByID(ctx, todo.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Name)
	assert.True(t, updated.Completed)

	require.NoError(t, repo.Delete(ctx, todo.ID, owner))
	_, err = repo.GetByID(ctx, todo.ID, owner)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestMemoryTodoRepositoryOwnerScoping(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	todo := &models.Todo{Name: "secret", Priority: models.PriorityHigh, UserID: owner}
	require.NoError(t, repo.Create(ctx, todo))

	_, err := repo.GetByID(ctx, todo.ID, stranger)
	assert.ErrorIs(t, err, ErrTodoNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, todo.ID, stranger), ErrTodoNotFound)

	foreign := *todo
	foreign.UserID = stranger
	assert.ErrorIs(t, repo.Update(ctx, &foreign), ErrTodoNotFound)

	todos, err := repo.ListByUser(ctx, stranger, TodoFilter{})
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestMemoryTodoRepositoryListFilters(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	owner := uuid.New()

	seed := []struct {
		name      string
		priority  models.Priority
		completed bool
	}{
		{"a", models.PriorityLow, false},
		{"b", models.PriorityHigh, true},
		{"c", models.PriorityHigh, false},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, &models.Todo{
			Name: s.name, Priority: s.priority, Completed: s.completed, UserID: owner,
		}))
	}

	all, err := repo.ListByUser(ctx, owner, TodoFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	completed := true
	done, err := repo.ListByUser(ctx, owner, TodoFilter{Completed: &completed})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "b", done[0].Name)

	high := models.PriorityHigh
	urgent, err := repo.ListByUser(ctx, owner, TodoFilter{Priority: &high})
	require.NoError(t, err)
	assert.Len(t, urgent, 2)

	notDone := false
	highPending, err := repo.ListByUser(ctx, owner, TodoFilter{Completed: &notDone, Priority: &high})
	require.NoError(t, err)
	require.Len(t, highPending, 1)
	assert.Equal(t, "c", highPending[0].Name)
}
