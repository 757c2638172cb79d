package services

import "errors"

var (
	// ErrDuplicateUsername is returned when registration targets a taken name.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned for any failed login, without
	// distinguishing an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when an operation targets a missing record.
	ErrNotFound = errors.New("record not found")
)
