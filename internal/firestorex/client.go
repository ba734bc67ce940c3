// Package firestorex wires up the Cloud Firestore client used as the remote
// document store and translates its RPC failures into application errors.
package firestorex

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewClient builds a Firestore client for the given project and database.
// If credsPath is empty, Application Default Credentials are used.
func NewClient(ctx context.Context, projectID, database, credsPath string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credsPath))
	}

	if database == "" || database == firestore.DefaultDatabaseID {
		return firestore.NewClient(ctx, projectID, opts...)
	}
	return firestore.NewClientWithDatabase(ctx, projectID, database, opts...)
}
