package users

import (
	"context"
	"testing"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "h1", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestMemoryRepository_CreateDuplicateFails(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"}))

	err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	// first write wins
	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", user.PasswordHash)
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"}))

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	user.PasswordHash = "tampered"

	again, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", again.PasswordHash)
}
