package db

import (
	"nuture_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate creates the four collections plus the provider-account table used
// by the managed-auth stub
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Claim{},
		&domain.VaultRecord{},
		&domain.ReferralEdge{},
		&domain.ProviderAccount{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
