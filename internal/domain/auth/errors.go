package auth

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountDeactivated   = errors.New("account is deactivated, contact HR")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	ErrUserNotFound         = errors.New("user not found")
)
