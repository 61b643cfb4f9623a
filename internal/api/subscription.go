package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nuture_backend/internal/config"
	"nuture_backend/internal/domain"
	"nuture_backend/internal/store"
	"nuture_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// subscribeBonus is the fixed point grant applied atomically with activation
const subscribeBonus = 100

// SubscribeRequest carries the subscription activation fields
type SubscribeRequest struct {
	UID       string `json:"uid" binding:"required"`    // Target user
	PlanID    string `json:"planId" binding:"required"` // Selected plan
	Reference string `json:"reference"`                 // Opaque payment reference
}

// subscriptionView is the client-visible subscription snapshot
type subscriptionView struct {
	PlanID           string `json:"planId"`
	Status           string `json:"status"`
	StartDate        string `json:"startDate"`
	PaymentReference string `json:"paymentReference"`
}

func viewSubscription(sub *domain.Subscription) *subscriptionView {
	if sub == nil {
		return nil
	}
	return &subscriptionView{
		PlanID:           sub.PlanID,
		Status:           sub.Status,
		StartDate:        isoTime(sub.StartDate),
		PaymentReference: sub.PaymentReference,
	}
}

// SubscribeHandler replaces the user's subscription and awards the point
// bonus. The two effects ride in one atomic document update; the write is
// unconditional, so an unknown uid is a silent no-op, as in the legacy
// deployments.
func SubscribeHandler(users store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		sub := domain.Subscription{
			PlanID:           req.PlanID,
			Status:           "active",
			StartDate:        time.Now(),
			PaymentReference: req.Reference,
		}
		if err := users.ActivateSubscription(c.Request.Context(), req.UID, sub, subscribeBonus); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.UID,
				"plan_id": req.PlanID,
				"error":   err.Error(),
			}).Error("Subscription activation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate subscription"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": req.UID,
			"plan_id": req.PlanID,
			"bonus":   subscribeBonus,
		}).Info("Subscription activated")
		_ = utils.DeleteCache(context.Background(), rdb, subscriptionCacheKey(req.UID))
		c.JSON(http.StatusOK, gin.H{
			"message":      "Subscription activated",
			"subscription": viewSubscription(&sub),
		})
	}
}

// GetSubscriptionHandler returns the subscription snapshot plus the coverage
// already used. Full coverage accounting sums the user's approved claims;
// relaxed deployments report zero unconditionally.
func GetSubscriptionHandler(st store.Store, rdb *redis.Client, mode config.CoverageMode) gin.HandlerFunc {
	type subscriptionStatus struct {
		Subscription *subscriptionView `json:"subscription"`
		CoverageUsed float64           `json:"coverageUsed"`
	}
	return func(c *gin.Context) {
		uid := c.Param("uid")
		ctx := c.Request.Context()
		cacheKey := subscriptionCacheKey(uid)

		var cached subscriptionStatus
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"subscription": cached.Subscription,
				"coverageUsed": cached.CoverageUsed,
				"cached":       true,
			})
			return
		}

		user, err := st.GetUserByID(ctx, uid)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User profile not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		var coverageUsed float64
		if mode == config.CoverageFull {
			coverageUsed, err = st.ApprovedClaimTotal(ctx, uid)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate claims"})
				return
			}
		}

		resp := subscriptionStatus{
			Subscription: viewSubscription(user.Subscription),
			CoverageUsed: coverageUsed,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, cacheTTL)
		c.JSON(http.StatusOK, gin.H{
			"subscription": resp.Subscription,
			"coverageUsed": resp.CoverageUsed,
			"cached":       false,
		})
	}
}
