// Package cli implements the interactive terminal client: a numeric menu
// loop over the auth and task services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/Zaugg-M/Cloud-ToDo/internal/config"
	"github.com/Zaugg-M/Cloud-ToDo/internal/firestorex"
	"github.com/Zaugg-M/Cloud-ToDo/internal/logging"
	"github.com/Zaugg-M/Cloud-ToDo/internal/repositories/tasks"
	"github.com/Zaugg-M/Cloud-ToDo/internal/repositories/users"
	"github.com/Zaugg-M/Cloud-ToDo/internal/services"
)

// App holds the wiring of the CLI: configuration, services, the current
// session and the terminal reader.
type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	taskService services.TaskService
	session     *services.Session
	client      *firestore.Client
	reader      *bufio.Reader
}

// NewApp connects to Firestore and wires the services over it.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	client, err := firestorex.NewClient(ctx, cfg.ProjectID, cfg.Database, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("firestore init error: %w", err)
	}

	as := services.NewAuthService(users.NewFirestoreRepository(client))
	ts := services.NewTaskService(tasks.NewFirestoreRepository(client))

	return &App{
		config:      cfg,
		logger:      logger,
		authService: as,
		taskService: ts,
		client:      client,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// status renders the current session for the menu header, e.g. "(alice)".
func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

// Run starts the menu loop and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "starting Cloud To-Do CLI", "project", a.config.ProjectID)
	scanner := bufio.NewScanner(os.Stdin)
	runMenu(ctx, a, scanner)
}

// Close releases the Firestore client.
func (a *App) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}
