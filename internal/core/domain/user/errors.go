package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrSessionDoesNotExist       = errors.New("session does not exist")
	ErrInvalidPasswordResetToken = errors.New("invalid password reset token")
	ErrInvalidEncodedID          = errors.New("invalid encoded user ID")
	ErrPermissionDenied          = errors.New("permission denied")
)
