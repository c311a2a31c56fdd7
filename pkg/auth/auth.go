// Package auth covers credentials and browser sessions for the annotation team.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/qazaqnlp/qural/pkg/storage"
	"github.com/rs/zerolog"
)

// HashPassword returns the hex digest stored in the users table. The column
// contract fixes the credential to a deterministic fixed-length hex string, so
// the digest is unsalted; swapping the function swaps the whole scheme.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Service runs the account operations against the shared store.
type Service struct {
	store  storage.Storage
	logger zerolog.Logger
}

func NewService(store storage.Storage, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Login reports whether password matches the stored digest for username. An
// unknown username is an ordinary false, not an error.
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	user, err := s.store.GetUser(ctx, username)
	if errors.Is(err, storage.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	match := subtle.ConstantTimeCompare([]byte(user.Password), []byte(HashPassword(password))) == 1
	return match, nil
}

// CreateAccount stores a new account. storage.ErrDuplicateUser passes through
// so callers can report the conflict inline.
func (s *Service) CreateAccount(ctx context.Context, username, password string) error {
	if err := s.store.CreateUser(ctx, username, HashPassword(password)); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("account created")
	return nil
}

// ChangePassword overwrites the stored digest for username.
func (s *Service) ChangePassword(ctx context.Context, username, password string) error {
	return s.store.UpdatePassword(ctx, username, HashPassword(password))
}

// ListAccounts returns every username, ordered.
func (s *Service) ListAccounts(ctx context.Context) ([]string, error) {
	return s.store.ListUsers(ctx)
}
