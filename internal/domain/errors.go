package domain

import "errors"

// Sentinel errors shared between the identity resolvers, the stores and the
// request boundary. Handlers map them to status codes with errors.Is; every
// other error surfaces as a store error (500).
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidAmount     = errors.New("amount must be a non-negative number")
)
