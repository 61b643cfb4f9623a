package store

import (
	"context"
	"testing"
	"time"

	"nuture_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *MemoryStore, id, email string) {
	t.Helper()
	require.NoError(t, s.CreateUser(context.Background(), &domain.User{
		ID:        id,
		FullName:  "Test User",
		Email:     email,
		CreatedAt: time.Now(),
	}))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "u1", "a@example.com")

	err := s.CreateUser(context.Background(), &domain.User{ID: "u2", Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestActivateSubscriptionMergesAndAddsPoints(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "u1", "a@example.com")

	sub := domain.Subscription{PlanID: "P1", Status: "active", StartDate: time.Now(), PaymentReference: "R1"}
	require.NoError(t, s.ActivateSubscription(context.Background(), "u1", sub, 100))

	user, err := s.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, user.Subscription)
	assert.Equal(t, "P1", user.Subscription.PlanID)
	assert.Equal(t, "active", user.Subscription.Status)
	assert.EqualValues(t, 100, user.Points)
	// Untouched fields keep their values
	assert.Equal(t, "Test User", user.FullName)

	// Replacement is wholesale, increment accumulates
	require.NoError(t, s.ActivateSubscription(context.Background(), "u1", domain.Subscription{PlanID: "P2", Status: "active"}, 100))
	user, err = s.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "P2", user.Subscription.PlanID)
	assert.EqualValues(t, 200, user.Points)
}

func TestActivateSubscriptionUnknownUserIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.ActivateSubscription(context.Background(), "ghost", domain.Subscription{PlanID: "P1"}, 100))
}

func TestStreakAndPointsCommute(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "u1", "a@example.com")

	require.NoError(t, s.IncrementStreak(context.Background(), "u1"))
	require.NoError(t, s.ActivateSubscription(context.Background(), "u1", domain.Subscription{PlanID: "P1", Status: "active"}, 100))
	require.NoError(t, s.IncrementStreak(context.Background(), "u1"))

	user, err := s.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, user.Streak)
	assert.EqualValues(t, 100, user.Points)
}

func TestListClaimsByUserOrdersNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, s.CreateClaim(context.Background(), &domain.Claim{
			ID:          id,
			UserID:      "u1",
			Amount:      10,
			Status:      domain.ClaimPending,
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, s.CreateClaim(context.Background(), &domain.Claim{ID: "other", UserID: "u2", SubmittedAt: base}))

	claims, err := s.ListClaimsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, "c3", claims[0].ID)
	assert.Equal(t, "c2", claims[1].ID)
	assert.Equal(t, "c1", claims[2].ID)
}

func TestApprovedClaimTotal(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateClaim(ctx, &domain.Claim{ID: "c1", UserID: "u1", Amount: 100, Status: domain.ClaimPending}))
	require.NoError(t, s.CreateClaim(ctx, &domain.Claim{ID: "c2", UserID: "u1", Amount: 50, Status: domain.ClaimPending}))
	require.NoError(t, s.CreateClaim(ctx, &domain.Claim{ID: "c3", UserID: "u1", Amount: 7, Status: domain.ClaimRejected}))

	total, err := s.ApprovedClaimTotal(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, total)

	s.SetClaimStatus("c1", domain.ClaimApproved)
	s.SetClaimStatus("c2", domain.ClaimApproved)

	total, err = s.ApprovedClaimTotal(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)
}

func TestListVaultRecordsByUserOrdersNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateVaultRecord(context.Background(), &domain.VaultRecord{ID: "v1", UserID: "u1", UploadedAt: base}))
	require.NoError(t, s.CreateVaultRecord(context.Background(), &domain.VaultRecord{ID: "v2", UserID: "u1", UploadedAt: base.Add(time.Minute)}))

	records, err := s.ListVaultRecordsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "v2", records[0].ID)
	assert.Equal(t, "v1", records[1].ID)
}

func TestListReferralsByReferrer(t *testing.T) {
	s := NewMemoryStore()
	s.AddReferralEdge(domain.ReferralEdge{ReferrerID: "u1", ReferredID: "u2"})
	s.AddReferralEdge(domain.ReferralEdge{ReferrerID: "u1", ReferredID: "u3"})
	s.AddReferralEdge(domain.ReferralEdge{ReferrerID: "u9", ReferredID: "u4"})

	edges, err := s.ListReferralsByReferrer(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}
