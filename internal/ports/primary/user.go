package primary

import "context"

// User roles. Every account has exactly one.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleLeader      = "leader"
)

// UserService defines the primary port for account management.
// Accounts are never deleted; they are disabled so historical camps,
// messages and notifications keep valid references.
type UserService interface {
	// CreateUser creates a new account.
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID int64) (*User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// ListUsers lists accounts. When disabledOnly is set, only disabled
	// accounts are returned.
	ListUsers(ctx context.Context, disabledOnly bool) ([]*User, error)

	// DisableUser soft-deletes an account.
	DisableUser(ctx context.Context, userID int64) error

	// EnableUser reactivates a disabled account.
	EnableUser(ctx context.Context, userID int64) error

	// SetPassword replaces an account's password.
	SetPassword(ctx context.Context, userID int64, password string) error
}

// CreateUserRequest contains parameters for creating an account.
type CreateUserRequest struct {
	Username string `validate:"required,min=1,max=64"`
	Password string
	Role     string `validate:"required,oneof=admin coordinator leader"`
}

// User is an account as exposed to callers. The password hash never
// leaves the persistence layer.
type User struct {
	ID         int64
	Username   string
	Role       string
	IsDisabled bool
	CreatedAt  string
}
