package primary

import "context"

// AuthResult classifies the outcome of an authentication attempt.
type AuthResult string

const (
	// AuthSuccess means the credentials matched an active account.
	AuthSuccess AuthResult = "success"
	// AuthBadCredentials covers both unknown usernames and wrong passwords;
	// callers cannot tell the two apart.
	AuthBadCredentials AuthResult = "bad_credentials"
	// AuthDisabled means the credentials matched but the account is disabled.
	AuthDisabled AuthResult = "disabled"
)

// AuthService defines the primary port for authentication.
type AuthService interface {
	// Authenticate verifies a username/password pair. The returned user is
	// non-nil only when the result is AuthSuccess.
	Authenticate(ctx context.Context, username, password string) (*User, AuthResult, error)
}
