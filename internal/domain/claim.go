package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Claim status values. Transition authority is the external approval
// process; this API only ever writes "pending".
const (
	ClaimPending  = "pending"
	ClaimApproved = "approved"
	ClaimRejected = "rejected"
)

// Receipts is an optional list of receipt references stored as a JSON column
type Receipts []string

// Value implements driver.Valuer
func (r Receipts) Value() (driver.Value, error) {
	if r == nil {
		r = Receipts{}
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner
func (r *Receipts) Scan(value interface{}) error {
	if value == nil {
		*r = Receipts{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return nil
}

// Claim Model
type Claim struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`            // Assigned at creation
	UserID      string    `gorm:"index;size:36;not null" json:"userId"`    // Owning user
	Amount      float64   `gorm:"not null" json:"amount"`                  // Non-negative claimed amount
	Description string    `gorm:"size:512" json:"description"`             // Free-text description
	Category    string    `gorm:"size:64" json:"category"`                 // Expense category
	Status      string    `gorm:"size:16;not null;index" json:"status"`    // pending, approved or rejected
	Receipts    Receipts  `gorm:"type:json" json:"receipts"`               // Optional receipt references
	SubmittedAt time.Time `gorm:"index" json:"-"`                          // Server-assigned submission time
}
