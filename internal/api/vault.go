package api

import (
	"context"
	"net/http"
	"time"

	"nuture_backend/internal/domain"
	"nuture_backend/internal/proof"
	"nuture_backend/internal/store"
	"nuture_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// AddVaultRequest carries the document metadata for a vault record
type AddVaultRequest struct {
	UID  string `json:"uid" binding:"required"`  // Owning user
	Name string `json:"name" binding:"required"` // Display name of the document
	Type string `json:"type"`                    // MIME/type tag
	Size int64  `json:"size"`                    // Reported size in bytes
}

// vaultView is a vault record with its upload time normalized to the
// canonical textual representation
type vaultView struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	UploadDate  string `json:"uploadDate"`
	IsEncrypted bool   `json:"isEncrypted"`
	CID         string `json:"cid"`
	TxHash      string `json:"txHash"`
}

func viewVaultRecord(r domain.VaultRecord) vaultView {
	return vaultView{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Type:        r.Type,
		Size:        r.Size,
		UploadDate:  isoTime(r.UploadedAt),
		IsEncrypted: r.IsEncrypted,
		CID:         r.CID,
		TxHash:      r.TxHash,
	}
}

// AddVaultRecordHandler stamps the document metadata with a mock provenance
// pair and persists it. The encryption flag is forced true by policy.
func AddVaultRecordHandler(vault store.VaultStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddVaultRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		now := time.Now()
		cid, txHash := proof.Generate(req.UID, req.Name, now)
		record := domain.VaultRecord{
			ID:          uuid.NewString(),
			UserID:      req.UID,
			Name:        req.Name,
			Type:        req.Type,
			Size:        req.Size,
			IsEncrypted: true,
			CID:         cid,
			TxHash:      txHash,
			UploadedAt:  now,
		}
		if err := vault.CreateVaultRecord(c.Request.Context(), &record); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.UID,
				"name":    req.Name,
				"error":   err.Error(),
			}).Error("Vault record write failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vault record"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   req.UID,
			"record_id": record.ID,
			"tx_hash":   record.TxHash,
		}).Info("Vault record added")
		_ = utils.DeleteCache(context.Background(), rdb, vaultCacheKey(req.UID))
		c.JSON(http.StatusCreated, viewVaultRecord(record))
	}
}

// GetVaultHandler returns all of a user's vault records, newest upload first
func GetVaultHandler(vault store.VaultStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		ctx := c.Request.Context()
		cacheKey := vaultCacheKey(uid)

		var cached []vaultView
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}

		records, err := vault.ListVaultRecordsByUser(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vault records"})
			return
		}
		views := make([]vaultView, len(records))
		for i, r := range records {
			views[i] = viewVaultRecord(r)
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, views, cacheTTL)
		c.JSON(http.StatusOK, views)
	}
}
