// Package models holds the document types stored in Firestore.
package models

import "time"

// User is a credential document stored at users/<username>. The username is
// the document key itself, so it carries no firestore field.
type User struct {
	Username     string    `firestore:"-"`
	PasswordHash string    `firestore:"password_hash"`
	CreatedAt    time.Time `firestore:"created_at,serverTimestamp"`
}
