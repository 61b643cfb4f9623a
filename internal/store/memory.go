package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"nuture_backend/internal/domain"
)

var errStoreOffline = errors.New("store offline")

// MemoryStore is an in-memory Store used by tests and local development. It
// mirrors the single-document atomicity of the real store: every method
// holds the mutex for the duration of its read-modify-write.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	claims  map[string]*domain.Claim
	vault   map[string]*domain.VaultRecord
	edges   []domain.ReferralEdge
	healthy bool
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]*domain.User),
		claims:  make(map[string]*domain.Claim),
		vault:   make(map[string]*domain.VaultRecord),
		healthy: true,
	}
}

// CreateUser inserts a user, enforcing the unique-email constraint
func (s *MemoryStore) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// GetUserByID returns a copy of the stored user
func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// GetUserByEmail returns a copy of the user with the exact email
func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ActivateSubscription replaces the subscription and adds the bonus under
// one lock, matching the real store's single-row atomicity. A missing user
// is a silent zero-row update, as with the real store.
func (s *MemoryStore) ActivateSubscription(_ context.Context, id string, sub domain.Subscription, bonus int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		subCopy := sub
		u.Subscription = &subCopy
		u.Points += bonus
	}
	return nil
}

// IncrementStreak bumps the streak counter by one
func (s *MemoryStore) IncrementStreak(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Streak++
	}
	return nil
}

// CreateClaim inserts a claim
func (s *MemoryStore) CreateClaim(_ context.Context, claim *domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *claim
	s.claims[claim.ID] = &cp
	return nil
}

// ListClaimsByUser returns the user's claims, newest submission first
func (s *MemoryStore) ListClaimsByUser(_ context.Context, userID string) ([]domain.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var claims []domain.Claim
	for _, c := range s.claims {
		if c.UserID == userID {
			claims = append(claims, *c)
		}
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].SubmittedAt.After(claims[j].SubmittedAt)
	})
	return claims, nil
}

// ApprovedClaimTotal sums the user's approved claim amounts
func (s *MemoryStore) ApprovedClaimTotal(_ context.Context, userID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, c := range s.claims {
		if c.UserID == userID && c.Status == domain.ClaimApproved {
			total += c.Amount
		}
	}
	return total, nil
}

// CreateVaultRecord inserts a vault record
func (s *MemoryStore) CreateVaultRecord(_ context.Context, record *domain.VaultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *record
	s.vault[record.ID] = &cp
	return nil
}

// ListVaultRecordsByUser returns the user's vault records, newest first
func (s *MemoryStore) ListVaultRecordsByUser(_ context.Context, userID string) ([]domain.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var records []domain.VaultRecord
	for _, r := range s.vault {
		if r.UserID == userID {
			records = append(records, *r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UploadedAt.After(records[j].UploadedAt)
	})
	return records, nil
}

// ListReferralsByReferrer returns edges where the user is the referrer
func (s *MemoryStore) ListReferralsByReferrer(_ context.Context, referrerID string) ([]domain.ReferralEdge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var edges []domain.ReferralEdge
	for _, e := range s.edges {
		if e.ReferrerID == referrerID {
			edges = append(edges, e)
		}
	}
	return edges, nil
}

// Ping reports the configured health state
func (s *MemoryStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.healthy {
		return errStoreOffline
	}
	return nil
}

// SetHealthy controls what Ping reports
func (s *MemoryStore) SetHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = healthy
}

// SetClaimStatus flips a claim's status, standing in for the external
// approval process in tests.
func (s *MemoryStore) SetClaimStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.claims[id]; ok {
		c.Status = status
	}
}

// AddReferralEdge records an edge directly; the API exposes no creation
// pathway for edges.
func (s *MemoryStore) AddReferralEdge(edge domain.ReferralEdge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges = append(s.edges, edge)
}
