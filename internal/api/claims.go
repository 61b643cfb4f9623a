package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nuture_backend/internal/config"
	"nuture_backend/internal/domain"
	"nuture_backend/internal/store"
	"nuture_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Amount accepts both a JSON number and a numeric string ("42.50"); clients
// send either.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.ErrInvalidAmount
	}
	*a = Amount(v)
	return nil
}

// SubmitClaimRequest carries the expense-claim fields
type SubmitClaimRequest struct {
	UID         string   `json:"uid" binding:"required"` // Owning user
	Amount      *Amount  `json:"amount"`                 // Claimed amount; number or numeric string
	Description string   `json:"description"`            // Free-text description
	Category    string   `json:"category"`               // Expense category
	Receipts    []string `json:"receipts"`               // Optional receipt references
}

// claimView is a claim with its submission time normalized to the canonical
// textual representation
type claimView struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Receipts    []string `json:"receipts"`
	Date        string   `json:"date"`
}

func viewClaim(c domain.Claim) claimView {
	return claimView{
		ID:          c.ID,
		UserID:      c.UserID,
		Amount:      c.Amount,
		Description: c.Description,
		Category:    c.Category,
		Status:      c.Status,
		Receipts:    c.Receipts,
		Date:        isoTime(c.SubmittedAt),
	}
}

// SubmitClaimHandler records a new expense claim with status pending. In
// relaxed coverage mode the user's streak counter is bumped afterwards;
// that increment is best-effort and its failure never fails the claim; the
// claim write is retained as an accepted partial failure.
func SubmitClaimHandler(st store.Store, rdb *redis.Client, mode config.CoverageMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitClaimRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if errors.Is(err, domain.ErrInvalidAmount) {
				c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidAmount.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Amount == nil || *req.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidAmount.Error()})
			return
		}

		claim := domain.Claim{
			ID:          uuid.NewString(),
			UserID:      req.UID,
			Amount:      float64(*req.Amount),
			Description: req.Description,
			Category:    req.Category,
			Status:      domain.ClaimPending,
			Receipts:    req.Receipts,
			SubmittedAt: time.Now(),
		}
		if err := st.CreateClaim(c.Request.Context(), &claim); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.UID,
				"amount":  claim.Amount,
				"error":   err.Error(),
			}).Error("Claim submission failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit claim"})
			return
		}

		if mode == config.CoverageRelaxed {
			// Engagement streak; independent of the claim write.
			if err := st.IncrementStreak(c.Request.Context(), req.UID); err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": req.UID,
					"error":   err.Error(),
				}).Warn("Streak increment failed after claim write")
			}
		}

		logrus.WithFields(logrus.Fields{
			"user_id":  req.UID,
			"claim_id": claim.ID,
			"amount":   claim.Amount,
			"category": claim.Category,
		}).Info("Claim submitted")
		_ = utils.DeleteCache(context.Background(), rdb, claimsCacheKey(req.UID))
		c.JSON(http.StatusCreated, gin.H{"message": "Claim submitted", "claimId": claim.ID})
	}
}

// GetClaimsHandler returns all of a user's claims, newest submission first
func GetClaimsHandler(claims store.ClaimStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		ctx := c.Request.Context()
		cacheKey := claimsCacheKey(uid)

		var cached []claimView
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}

		list, err := claims.ListClaimsByUser(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch claims"})
			return
		}
		views := make([]claimView, len(list))
		for i, claim := range list {
			views[i] = viewClaim(claim)
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, views, cacheTTL)
		c.JSON(http.StatusOK, views)
	}
}
