package api

import (
	"errors"
	"net/http"

	"nuture_backend/internal/domain"
	"nuture_backend/internal/store"
	"nuture_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// GetReferralsHandler returns the user's own referral code plus every edge
// where the user is the referrer. Edges are written by an out-of-scope
// attribution process; this endpoint only reads them.
func GetReferralsHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	type referralsResponse struct {
		ReferralCode string                `json:"referralCode"`
		Referrals    []domain.ReferralEdge `json:"referrals"`
	}
	return func(c *gin.Context) {
		uid := c.Param("uid")
		ctx := c.Request.Context()
		cacheKey := referralsCacheKey(uid)

		var cached referralsResponse
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"referralCode": cached.ReferralCode,
				"referrals":    cached.Referrals,
				"cached":       true,
			})
			return
		}

		user, err := st.GetUserByID(ctx, uid)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		edges, err := st.ListReferralsByReferrer(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
			return
		}
		if edges == nil {
			edges = []domain.ReferralEdge{}
		}

		resp := referralsResponse{ReferralCode: user.ReferralCode, Referrals: edges}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, cacheTTL)
		c.JSON(http.StatusOK, gin.H{
			"referralCode": resp.ReferralCode,
			"referrals":    resp.Referrals,
			"cached":       false,
		})
	}
}
