package identity

import (
	"context"
	"time"

	"nuture_backend/internal/domain"
	"nuture_backend/internal/referral"
	"nuture_backend/internal/store"
)

// welcomeBonus is the fixed point grant managed-auth signups start with.
// Soft-auth signups start at zero.
const welcomeBonus = 50

// Managed delegates id issuance, email uniqueness and password storage to an
// identity provider and keeps a companion profile document keyed by the
// provider-issued id.
type Managed struct {
	provider Provider
	users    store.UserStore
}

// NewManaged builds the managed-auth resolver
func NewManaged(provider Provider, users store.UserStore) *Managed {
	return &Managed{provider: provider, users: users}
}

// SignUp registers the credential with the provider, then writes the profile
// document under the provider's uid. The profile never holds the credential.
func (a *Managed) SignUp(ctx context.Context, in SignUpInput) (string, error) {
	uid, err := a.provider.CreateAccount(ctx, in.Email, in.Password, in.FullName)
	if err != nil {
		return "", err
	}

	nutmID := in.NutmID
	if nutmID == "" {
		nutmID = PendingNutmID
	}
	user := &domain.User{
		ID:           uid,
		FullName:     in.FullName,
		Email:        in.Email,
		NutmID:       nutmID,
		ReferralCode: referral.NewCode(),
		Points:       welcomeBonus,
		Streak:       0,
		CreatedAt:    time.Now(),
	}
	if err := a.users.CreateUser(ctx, user); err != nil {
		return "", err
	}
	return uid, nil
}

// LogIn verifies the credential with the provider, then reads the profile by
// the provider-issued id.
func (a *Managed) LogIn(ctx context.Context, email, password string) (*domain.User, error) {
	uid, err := a.provider.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.users.GetUserByID(ctx, uid)
}
