package domain

import "time"

// ReferralEdge records that one user referred another. The registry only
// reads edges by referrer; no endpoint in this API creates them.
type ReferralEdge struct {
	ID         uint      `gorm:"primaryKey" json:"-"`                      // Surrogate key
	ReferrerID string    `gorm:"index;size:36;not null" json:"referrerId"` // Referring user
	ReferredID string    `gorm:"size:36;not null" json:"referredId"`       // Referred user
	CreatedAt  time.Time `json:"createdAt"`                                // Edge creation time
}
