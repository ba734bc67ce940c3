package tasks

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/Zaugg-M/Cloud-ToDo/internal/firestorex"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"google.golang.org/api/iterator"
)

const (
	usersCollection = "users"
	tasksCollection = "tasks"
)

// FirestoreRepository implements Repository on top of the per-user tasks
// subcollection at users/<owner>/tasks.
type FirestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository returns a FirestoreRepository bound to the given client.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) col(owner string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(owner).Collection(tasksCollection)
}

func (r *FirestoreRepository) Create(ctx context.Context, owner string, task *models.Task) (string, error) {
	doc := r.col(owner).NewDoc()
	if _, err := doc.Create(ctx, task); err != nil {
		return "", firestorex.MapError(err)
	}
	return doc.ID, nil
}

func (r *FirestoreRepository) GetByID(ctx context.Context, owner, id string) (*models.Task, error) {
	snap, err := r.col(owner).Doc(id).Get(ctx)
	if err != nil {
		return nil, firestorex.MapError(err)
	}
	return taskFromSnapshot(snap)
}

func (r *FirestoreRepository) List(ctx context.Context, owner string) ([]*models.Task, error) {
	iter := r.col(owner).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	result := make([]*models.Task, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, firestorex.MapError(err)
		}
		task, err := taskFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, nil
}

// Set is a full-document overwrite: the existence check and the write are two
// separate calls, with no transaction between them. Single-writer sessions
// make this acceptable.
func (r *FirestoreRepository) Set(ctx context.Context, owner string, task *models.Task) error {
	doc := r.col(owner).Doc(task.ID)

	if _, err := doc.Get(ctx); err != nil {
		return firestorex.MapError(err)
	}
	if _, err := doc.Set(ctx, task); err != nil {
		return firestorex.MapError(err)
	}
	return nil
}

func (r *FirestoreRepository) Delete(ctx context.Context, owner, id string) error {
	doc := r.col(owner).Doc(id)

	if _, err := doc.Get(ctx); err != nil {
		return firestorex.MapError(err)
	}
	if _, err := doc.Delete(ctx); err != nil {
		return firestorex.MapError(err)
	}
	return nil
}

func taskFromSnapshot(snap *firestore.DocumentSnapshot) (*models.Task, error) {
	task := &models.Task{}
	if err := snap.DataTo(task); err != nil {
		return nil, fmt.Errorf("failed to decode task document: %w", err)
	}
	task.ID = snap.Ref.ID
	return task, nil
}
