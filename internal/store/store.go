package store

import (
	"context"

	"nuture_backend/internal/domain"
)

// UserStore is the users collection. Single-document updates are atomic;
// nothing here spans more than one row.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error                                          // domain.ErrDuplicateEmail on a unique-email violation
	GetUserByID(ctx context.Context, id string) (*domain.User, error)                                 // domain.ErrUserNotFound when absent
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)                           // domain.ErrUserNotFound when absent; exact, case-sensitive match
	ActivateSubscription(ctx context.Context, id string, sub domain.Subscription, bonus int64) error  // replaces subscription and adds bonus points in one update
	IncrementStreak(ctx context.Context, id string) error                                             // commuting +1; safe under concurrent updates
}

// ClaimStore is the claims collection
type ClaimStore interface {
	CreateClaim(ctx context.Context, claim *domain.Claim) error
	ListClaimsByUser(ctx context.Context, userID string) ([]domain.Claim, error) // submission time descending
	ApprovedClaimTotal(ctx context.Context, userID string) (float64, error)      // sum of approved amounts
}

// VaultStore is the vault collection
type VaultStore interface {
	CreateVaultRecord(ctx context.Context, record *domain.VaultRecord) error
	ListVaultRecordsByUser(ctx context.Context, userID string) ([]domain.VaultRecord, error) // upload time descending
}

// ReferralStore is the referrals collection; read-only in this API
type ReferralStore interface {
	ListReferralsByReferrer(ctx context.Context, referrerID string) ([]domain.ReferralEdge, error)
}

// Store is the process-wide handle created once at startup and injected into
// every component.
type Store interface {
	UserStore
	ClaimStore
	VaultStore
	ReferralStore
	Ping(ctx context.Context) error
}
