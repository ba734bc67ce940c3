package users

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/Zaugg-M/Cloud-ToDo/internal/firestorex"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
)

const usersCollection = "users"

// FirestoreRepository implements Repository on top of the users collection,
// keyed by username.
type FirestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository returns a FirestoreRepository bound to the given client.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) doc(username string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(username)
}

// Create writes users/<username>. Firestore's Create precondition rejects an
// existing document, which MapError surfaces as common.ErrorAlreadyExists.
func (r *FirestoreRepository) Create(ctx context.Context, user *models.User) error {
	if _, err := r.doc(user.Username).Create(ctx, user); err != nil {
		return firestorex.MapError(err)
	}
	return nil
}

func (r *FirestoreRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	snap, err := r.doc(username).Get(ctx)
	if err != nil {
		return nil, firestorex.MapError(err)
	}

	user := &models.User{}
	if err := snap.DataTo(user); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	user.Username = snap.Ref.ID
	return user, nil
}
