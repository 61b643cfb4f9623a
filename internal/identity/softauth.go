package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"nuture_backend/internal/domain"
	"nuture_backend/internal/referral"
	"nuture_backend/internal/store"

	"github.com/google/uuid"
)

// SoftAuth resolves identities entirely against the user store. Credentials
// are stored and compared in clear text, as the legacy deployments did;
// the server refuses to start in this mode unless the operator sets the
// non-production plaintext flag.
//
// The email pre-check and the subsequent write are two separate store calls.
// The store's unique index on email closes that race window: a losing
// concurrent signup surfaces as ErrDuplicateEmail from the write instead.
type SoftAuth struct {
	users store.UserStore
}

// NewSoftAuth builds the soft-auth resolver over the given user store
func NewSoftAuth(users store.UserStore) *SoftAuth {
	return &SoftAuth{users: users}
}

// SignUp checks for an existing email, then persists the profile with a
// fresh id, a fresh referral code and the welcome defaults.
func (a *SoftAuth) SignUp(ctx context.Context, in SignUpInput) (string, error) {
	if _, err := a.users.GetUserByEmail(ctx, in.Email); err == nil {
		return "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	nutmID := in.NutmID
	if nutmID == "" {
		nutmID = PendingNutmID
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Email:        in.Email,
		Password:     in.Password,
		NutmID:       nutmID,
		ReferralCode: referral.NewCode(),
		Points:       0,
		Streak:       0,
		CreatedAt:    time.Now(),
	}
	if err := a.users.CreateUser(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// LogIn looks the profile up by exact email and compares the stored
// credential byte for byte.
func (a *SoftAuth) LogIn(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, domain.ErrInvalidCredential
	}
	return user, nil
}
