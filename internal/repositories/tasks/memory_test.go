package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSteppingRepo returns a repo whose clock advances one second per call,
// so created tasks always have distinct, ordered timestamps.
func newSteppingRepo() *MemoryRepository {
	repo := NewMemoryRepository()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return repo
}

func TestMemoryRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := newSteppingRepo()

	id, err := repo.Create(ctx, "alice", &models.Task{Title: "Buy milk"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	task, err := repo.GetByID(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, id, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestMemoryRepository_ListOrderedByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newSteppingRepo()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, "alice", &models.Task{Title: title})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "third", list[2].Title)
}

func TestMemoryRepository_ListEmptyOwner(t *testing.T) {
	repo := NewMemoryRepository()

	list, err := repo.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newSteppingRepo()

	id, err := repo.Create(ctx, "alice", &models.Task{Title: "old"})
	require.NoError(t, err)

	task, err := repo.GetByID(ctx, "alice", id)
	require.NoError(t, err)
	task.Title = "new"
	task.Completed = true
	require.NoError(t, repo.Set(ctx, "alice", task))

	got, err := repo.GetByID(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.True(t, got.Completed)
}

func TestMemoryRepository_SetMissingFails(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Set(context.Background(), "alice", &models.Task{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newSteppingRepo()

	id, err := repo.Create(ctx, "alice", &models.Task{Title: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "alice", id))

	_, err = repo.GetByID(ctx, "alice", id)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = repo.Delete(ctx, "alice", id)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := newSteppingRepo()

	idA, err := repo.Create(ctx, "alice", &models.Task{Title: "alice's task"})
	require.NoError(t, err)

	listB, err := repo.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, listB)

	_, err = repo.GetByID(ctx, "bob", idA)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
