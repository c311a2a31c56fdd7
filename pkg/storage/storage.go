package storage

import (
	"context"
	"errors"

	"github.com/qazaqnlp/qural/pkg/models"
)

var (
	// ErrDuplicateUser is returned when creating an account whose username
	// already exists. The existing row is left untouched.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrUserNotFound is returned by GetUser for an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

type Storage interface {
	// Credential operations
	SeedAdmin(ctx context.Context, username, passwordHash string) error
	CreateUser(ctx context.Context, username, passwordHash string) error
	GetUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]string, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error

	// Annotation operations
	UpsertAnnotation(ctx context.Context, record *models.Annotation) error
	GetAnnotation(ctx context.Context, id string) (*models.Annotation, error)
	ListAnnotations(ctx context.Context) ([]models.Annotation, error)
	ListAnnotationsByCategory(ctx context.Context, category string) ([]models.Annotation, error)
	CountAnnotations(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
}
