package domain

import "time"

// ProviderAccount is the credential record held by the stubbed managed
// identity provider. Unlike soft-auth profiles, the credential here is
// always stored as a bcrypt hash.
type ProviderAccount struct {
	UID          string    `gorm:"primaryKey;size:36"`      // Provider-issued user id
	Email        string    `gorm:"uniqueIndex;size:255"`    // Unique login email
	PasswordHash string    `gorm:"size:255;not null"`       // bcrypt hash
	DisplayName  string    `gorm:"size:255"`                // Display name
	CreatedAt    time.Time // Account creation time
}
