// Package identity decides how raw credentials map to a user identity.
// Two interchangeable policies exist, selected by configuration at startup:
// soft-auth resolves everything against the application's own store, while
// managed-auth delegates credential handling to an identity provider.
package identity

import (
	"context"

	"nuture_backend/internal/domain"
)

// SignUpInput carries the caller-supplied signup fields
type SignUpInput struct {
	Email    string // Unique login email
	Password string // Raw credential
	FullName string // Display name
	NutmID   string // Optional external program identifier
}

// PendingNutmID is stored when the caller supplies no program identifier
const PendingNutmID = "NUTM-PENDING"

// Resolver maps signup and login requests to user identities
type Resolver interface {
	// SignUp creates the identity and its profile document, returning the
	// new user id. Fails with domain.ErrDuplicateEmail when the email is
	// already registered.
	SignUp(ctx context.Context, in SignUpInput) (string, error)
	// LogIn verifies the credential and returns the profile. Fails with
	// domain.ErrUserNotFound for an unknown email and
	// domain.ErrInvalidCredential for a wrong password.
	LogIn(ctx context.Context, email, password string) (*domain.User, error)
}
