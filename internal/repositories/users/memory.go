package users

import (
	"context"
	"sync"
	"time"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
)

// MemoryRepository is an in-memory Repository. It is a full implementation,
// not a mock, and backs the service tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return common.ErrorAlreadyExists
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[user.Username] = stored
	return nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	user := stored
	return &user, nil
}
