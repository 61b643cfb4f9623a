package identity

import (
	"context"
	"errors"
	"time"

	"nuture_backend/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Provider is the managed identity provider's surface: it owns id issuance,
// email uniqueness and credential storage. Real anchoring to an external
// provider is out of scope; the stub below stands in for it.
type Provider interface {
	// CreateAccount registers the credential and returns the provider-issued
	// user id. Fails with domain.ErrDuplicateEmail on a known email.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	// VerifyPassword checks the credential and returns the account's user
	// id. Fails with domain.ErrUserNotFound or domain.ErrInvalidCredential.
	VerifyPassword(ctx context.Context, email, password string) (string, error)
}

// StubProvider keeps provider accounts in a local table with bcrypt-hashed
// passwords. It simulates the managed provider without any network calls.
type StubProvider struct {
	db *gorm.DB
}

// NewStubProvider builds the provider stub over the given database handle
func NewStubProvider(db *gorm.DB) *StubProvider {
	return &StubProvider{db: db}
}

// CreateAccount hashes the password and inserts the account record
func (p *StubProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	account := domain.ProviderAccount{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
	}
	if err := p.db.WithContext(ctx).Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", domain.ErrDuplicateEmail
		}
		return "", err
	}
	return account.UID, nil
}

// VerifyPassword compares the supplied password against the stored hash
func (p *StubProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	var account domain.ProviderAccount
	if err := p.db.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredential
	}
	return account.UID, nil
}
