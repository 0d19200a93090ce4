package auth

import "context"

// AuthService defines login and credential management.
type AuthService interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ChangePassword replaces the caller's password after verifying the
	// current one, clearing the temporary-password flag.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
