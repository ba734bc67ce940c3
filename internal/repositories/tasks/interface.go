// Package tasks provides storage for to-do task documents, nested under their
// owning user.
package tasks

import (
	"context"

	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
)

// Repository describes storage operations for task documents. Every method is
// scoped by owner (the username); a task is never reachable through any other
// user's scope.
type Repository interface {
	// Create writes a new task document under the owner and returns the
	// store-generated identifier.
	Create(ctx context.Context, owner string, task *models.Task) (string, error)

	// GetByID returns the owner's task, or common.ErrorNotFound.
	GetByID(ctx context.Context, owner, id string) (*models.Task, error)

	// List returns all of the owner's tasks ordered by creation time
	// ascending. An owner with no tasks yields an empty slice.
	List(ctx context.Context, owner string) ([]*models.Task, error)

	// Set overwrites the whole task document identified by task.ID.
	// Fails with common.ErrorNotFound if the document does not exist.
	Set(ctx context.Context, owner string, task *models.Task) error

	// Delete removes the task permanently, or fails with common.ErrorNotFound.
	Delete(ctx context.Context, owner, id string) error
}
