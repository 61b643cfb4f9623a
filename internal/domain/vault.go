package domain

import "time"

// VaultRecord Model. Records are immutable once written and never deleted.
type VaultRecord struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`         // Assigned at creation
	UserID      string    `gorm:"index;size:36;not null" json:"userId"` // Owning user
	Name        string    `gorm:"size:255;not null" json:"name"`        // Display name of the document
	Type        string    `gorm:"size:64" json:"type"`                  // MIME/type tag
	Size        int64     `json:"size"`                                 // Reported size in bytes
	IsEncrypted bool      `gorm:"not null" json:"isEncrypted"`          // Forced true by policy
	CID         string    `gorm:"size:64" json:"cid"`                   // Mock content identifier
	TxHash      string    `gorm:"size:66" json:"txHash"`                // Mock transaction hash
	UploadedAt  time.Time `gorm:"index" json:"-"`                       // Server-assigned upload time
}
