package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository. It is a full implementation,
// not a mock, and backs the service tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]map[string]models.Task // owner -> id -> task
	// clock is a test seam; List ordering depends on distinct timestamps.
	clock func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks: make(map[string]map[string]models.Task),
		clock: time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, owner string, task *models.Task) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tasks[owner] == nil {
		r.tasks[owner] = make(map[string]models.Task)
	}

	id := uuid.NewString()
	stored := *task
	stored.ID = id
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock()
	}
	r.tasks[owner][id] = stored
	return id, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, owner, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tasks[owner][id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	task := stored
	return &task, nil
}

func (r *MemoryRepository) List(ctx context.Context, owner string) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Task, 0, len(r.tasks[owner]))
	for _, stored := range r.tasks[owner] {
		task := stored
		result = append(result, &task)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) Set(ctx context.Context, owner string, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[owner][task.ID]; !ok {
		return common.ErrorNotFound
	}
	r.tasks[owner][task.ID] = *task
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[owner][id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.tasks[owner], id)
	return nil
}
