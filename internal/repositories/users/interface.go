// Package users provides storage for user credential documents.
package users

import (
	"context"

	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
)

// Repository describes storage operations for user documents.
// Implementations are backed by Firestore in production and by an in-memory
// map in tests.
type Repository interface {
	// Create inserts a new user document keyed by username. The store's key
	// uniqueness is the only duplicate check: a taken username fails with
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the user document, or common.ErrorNotFound if no
	// document exists for the username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
