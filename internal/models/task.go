package models

import (
	"fmt"
	"time"
)

// Task is a single to-do item stored at users/<username>/tasks/<id>.
// The id is generated by the store; like User.Username, it is the document
// key and not a field.
type Task struct {
	ID          string    `firestore:"-"`
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	Completed   bool      `firestore:"completed"`
	CreatedAt   time.Time `firestore:"created_at,serverTimestamp"`
}

// Status returns a human-readable completion state.
func (t *Task) Status() string {
	if t.Completed {
		return "Done"
	}
	return "Not done"
}

// String renders the short one-line form used in listings.
func (t *Task) String() string {
	return fmt.Sprintf("%s  [%s]", t.Title, t.Status())
}
