package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"backend/internal/models"
)

// memoryUserRepository keeps users in a mutex-guarded map. The uniqueness
// check and the insert happen under one lock, so concurrent signups with the
// same email cannot both succeed.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{byEmail: make(map[string]*models.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrEmailExists
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}
