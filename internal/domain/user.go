package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Subscription is embedded in the user document and replaced wholesale on
// each subscribe call; no history is retained. Stored as a JSON column so the
// replacement can ride in the same UPDATE as the points increment.
type Subscription struct {
	PlanID           string    `json:"planId"`           // Selected plan identifier
	Status           string    `json:"status"`           // active or inactive
	StartDate        time.Time `json:"startDate"`        // Server-assigned activation time
	PaymentReference string    `json:"paymentReference"` // Opaque payment reference
}

// Value implements driver.Valuer so the subscription is written as JSON
func (s Subscription) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for reading the JSON column back
func (s *Subscription) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return nil
}

// User Model
type User struct {
	ID           string        `gorm:"primaryKey;size:36" json:"uid"`              // Generated once, immutable
	FullName     string        `gorm:"size:255;not null" json:"fullName"`          // Display name
	Email        string        `gorm:"uniqueIndex;size:255;not null" json:"email"` // Unique across all users
	Password     string        `gorm:"size:255" json:"-"`                          // Plaintext in soft-auth mode, empty in managed mode
	NutmID       string        `gorm:"size:64" json:"nutmId"`                      // External program identifier
	ReferralCode string        `gorm:"size:16" json:"referralCode"`                // Issued once at signup
	Points       int64         `gorm:"not null;default:0" json:"points"`           // Non-negative reward counter
	Streak       int64         `gorm:"not null;default:0" json:"streak"`           // Non-negative engagement counter
	Subscription *Subscription `gorm:"serializer:json" json:"subscription"`        // Nullable; replaced wholesale on subscribe
	CreatedAt    time.Time     `json:"createdAt"`                                  // Server-assigned, immutable
}
