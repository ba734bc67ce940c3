package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"github.com/Zaugg-M/Cloud-ToDo/internal/repositories/users"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create a new account; common.ErrorAlreadyExists if the
//     username is taken, common.ErrorValidation on malformed input.
//   - Login: authenticate; common.ErrorNotFound if the account does not
//     exist, common.ErrorInvalidCredentials on a wrong password. On success
//     returns a Session bound to the username.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (*Session, error)
}

type authService struct {
	repo     users.Repository
	validate *validator.Validate
}

// NewAuthService constructs an AuthService over the given user repository.
func NewAuthService(repo users.Repository) AuthService {
	return &authService{repo: repo, validate: validator.New()}
}

type credentialsInput struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=6"`
}

// Register validates the credentials, hashes the password with bcrypt and
// creates users/<username>. The key itself enforces uniqueness; there is no
// separate existence check.
func (s *authService) Register(ctx context.Context, username string, password []byte) error {
	in := credentialsInput{Username: username, Password: string(password)}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	return s.repo.Create(ctx, user)
}

// Login fetches the user document and compares the submitted password against
// the stored bcrypt hash.
func (s *authService) Login(ctx context.Context, username string, password []byte) (*Session, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), password); err != nil {
		return nil, common.ErrorInvalidCredentials
	}

	return &Session{Username: username, StartedAt: time.Now()}, nil
}
