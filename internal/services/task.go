package services

import (
	"context"
	"fmt"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"github.com/Zaugg-M/Cloud-ToDo/internal/repositories/tasks"
	"github.com/go-playground/validator/v10"
)

// TaskUpdate carries the task fields to overwrite. A nil field keeps the
// current value.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// TaskService defines task operations for the CLI. Every method requires a
// live session and operates only on that user's tasks.
type TaskService interface {
	// Add creates a task with completed=false and returns its identifier.
	// Fails with common.ErrorValidation if the title is empty.
	Add(ctx context.Context, sess *Session, title, description string) (string, error)

	// List returns the session's tasks ordered by creation time ascending.
	List(ctx context.Context, sess *Session) ([]*models.Task, error)

	// Update overwrites the given fields of a task, or fails with
	// common.ErrorNotFound.
	Update(ctx context.Context, sess *Session, id string, upd TaskUpdate) error

	// ToggleComplete flips the completed flag, or fails with
	// common.ErrorNotFound.
	ToggleComplete(ctx context.Context, sess *Session, id string) error

	// Delete removes a task permanently, or fails with common.ErrorNotFound.
	Delete(ctx context.Context, sess *Session, id string) error
}

type taskService struct {
	repo     tasks.Repository
	validate *validator.Validate
}

// NewTaskService constructs a TaskService over the given task repository.
func NewTaskService(repo tasks.Repository) TaskService {
	return &taskService{repo: repo, validate: validator.New()}
}

type taskInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
}

func requireSession(sess *Session) error {
	if sess == nil || sess.Username == "" {
		return common.ErrorUnauthorized
	}
	return nil
}

func (s *taskService) Add(ctx context.Context, sess *Session, title, description string) (string, error) {
	if err := requireSession(sess); err != nil {
		return "", err
	}

	in := taskInput{Title: title, Description: description}
	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	task := &models.Task{Title: title, Description: description}
	return s.repo.Create(ctx, sess.Username, task)
}

func (s *taskService) List(ctx context.Context, sess *Session) ([]*models.Task, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, sess.Username)
}

// Update reads the task, applies the non-nil fields and writes the whole
// document back. No field-level concurrency control is attempted.
func (s *taskService) Update(ctx context.Context, sess *Session, id string, upd TaskUpdate) error {
	if err := requireSession(sess); err != nil {
		return err
	}

	task, err := s.repo.GetByID(ctx, sess.Username, id)
	if err != nil {
		return err
	}

	changed := false
	if upd.Title != nil && *upd.Title != task.Title {
		task.Title = *upd.Title
		changed = true
	}
	if upd.Description != nil && *upd.Description != task.Description {
		task.Description = *upd.Description
		changed = true
	}
	if !changed {
		return nil
	}

	in := taskInput{Title: task.Title, Description: task.Description}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	return s.repo.Set(ctx, sess.Username, task)
}

func (s *taskService) ToggleComplete(ctx context.Context, sess *Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}

	task, err := s.repo.GetByID(ctx, sess.Username, id)
	if err != nil {
		return err
	}

	task.Completed = !task.Completed
	return s.repo.Set(ctx, sess.Username, task)
}

func (s *taskService) Delete(ctx context.Context, sess *Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return s.repo.Delete(ctx, sess.Username, id)
}
