package store

import (
	"context"
	"errors"

	"nuture_backend/internal/domain"

	"gorm.io/gorm"
)

// GormStore backs the four collections with MySQL tables. Open the gorm
// handle with TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an already-open gorm handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateUser inserts a new user document. The unique index on email is the
// store-level backstop behind the resolver's pre-check.
func (s *GormStore) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetUserByID fetches a user document by id
func (s *GormStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user document by exact email match
func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ActivateSubscription replaces the subscription field and adds the point
// bonus in a single UPDATE, so the two effects are atomic with respect to
// each other. Untouched fields keep their values (merge semantics). A
// missing user id is not an error here; the write simply matches zero rows.
func (s *GormStore) ActivateSubscription(ctx context.Context, id string, sub domain.Subscription, bonus int64) error {
	return s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"subscription": sub,
			"points":       gorm.Expr("points + ?", bonus),
		}).Error
}

// IncrementStreak bumps the streak counter by one. The increment commutes
// with concurrent point updates on the same row.
func (s *GormStore) IncrementStreak(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		UpdateColumn("streak", gorm.Expr("streak + ?", 1)).Error
}

// CreateClaim inserts a new claim document
func (s *GormStore) CreateClaim(ctx context.Context, claim *domain.Claim) error {
	return s.db.WithContext(ctx).Create(claim).Error
}

// ListClaimsByUser returns all of a user's claims, newest submission first
func (s *GormStore) ListClaimsByUser(ctx context.Context, userID string) ([]domain.Claim, error) {
	var claims []domain.Claim
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&claims).Error
	return claims, err
}

// ApprovedClaimTotal sums the amounts of the user's approved claims
func (s *GormStore) ApprovedClaimTotal(ctx context.Context, userID string) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&domain.Claim{}).
		Where("user_id = ? AND status = ?", userID, domain.ClaimApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// CreateVaultRecord inserts a new vault record
func (s *GormStore) CreateVaultRecord(ctx context.Context, record *domain.VaultRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// ListVaultRecordsByUser returns all of a user's vault records, newest first
func (s *GormStore) ListVaultRecordsByUser(ctx context.Context, userID string) ([]domain.VaultRecord, error) {
	var records []domain.VaultRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at desc").
		Find(&records).Error
	return records, err
}

// ListReferralsByReferrer returns all edges where the user is the referrer
func (s *GormStore) ListReferralsByReferrer(ctx context.Context, referrerID string) ([]domain.ReferralEdge, error) {
	var edges []domain.ReferralEdge
	err := s.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Find(&edges).Error
	return edges, err
}

// Ping reports whether the underlying database connection is alive
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
