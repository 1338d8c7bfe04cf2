package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userRepo secondary.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(userRepo secondary.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser creates a new account.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req primary.CreateUserRequest) (*primary.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user request: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.userRepo.Create(ctx, &secondary.UserRecord{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", zap.String("username", req.Username), zap.String("role", req.Role))

	record, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created user: %w", err)
	}

	return recordToUser(record), nil
}

// GetUser retrieves a user by ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*primary.User, error) {
	record, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recordToUser(record), nil
}

// GetUserByUsername retrieves a user by username.
func (s *UserServiceImpl) GetUserByUsername(ctx context.Context, username string) (*primary.User, error) {
	record, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return recordToUser(record), nil
}

// ListUsers lists accounts.
func (s *UserServiceImpl) ListUsers(ctx context.Context, disabledOnly bool) ([]*primary.User, error) {
	records, err := s.userRepo.List(ctx, disabledOnly)
	if err != nil {
		return nil, err
	}

	users := make([]*primary.User, 0, len(records))
	for _, record := range records {
		users = append(users, recordToUser(record))
	}
	return users, nil
}

// DisableUser soft-deletes an account. The row stays so camps, messages
// and notifications keep valid references.
func (s *UserServiceImpl) DisableUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.SetDisabled(ctx, userID, true); err != nil {
		return err
	}
	s.logger.Info("user disabled", zap.Int64("user_id", userID))
	return nil
}

// EnableUser reactivates a disabled account.
func (s *UserServiceImpl) EnableUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.SetDisabled(ctx, userID, false); err != nil {
		return err
	}
	s.logger.Info("user enabled", zap.Int64("user_id", userID))
	return nil
}

// SetPassword replaces an account's password.
func (s *UserServiceImpl) SetPassword(ctx context.Context, userID int64, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.userRepo.SetPasswordHash(ctx, userID, hash)
}

func recordToUser(record *secondary.UserRecord) *primary.User {
	return &primary.User{
		ID:         record.ID,
		Username:   record.Username,
		Role:       record.Role,
		IsDisabled: record.IsDisabled,
		CreatedAt:  record.CreatedAt,
	}
}

var _ primary.UserService = (*UserServiceImpl)(nil)
