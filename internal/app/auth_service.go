package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// dummyHash is a throwaway bcrypt hash compared against when the
// username does not exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userRepo secondary.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(userRepo secondary.UserRepository, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate verifies a username/password pair. An unknown username
// and a wrong password both come back as AuthBadCredentials so a caller
// cannot probe which usernames exist. A disabled account with correct
// credentials is reported separately.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, username, password string) (*primary.User, primary.AuthResult, error) {
	record, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// Burn a comparison so the unknown-user path costs roughly the
		// same as a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, primary.AuthBadCredentials, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, primary.AuthBadCredentials, nil
	}

	if record.IsDisabled {
		s.logger.Info("login attempt on disabled account", zap.String("username", username))
		return nil, primary.AuthDisabled, nil
	}

	return recordToUser(record), primary.AuthSuccess, nil
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

var _ primary.AuthService = (*AuthServiceImpl)(nil)
