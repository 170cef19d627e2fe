package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoCurrentSession   = errors.New("no current session")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
