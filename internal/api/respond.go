package api

import (
	"errors"
	"net/http"
	"time"

	"nuture_backend/internal/domain"
)

// cacheTTL is how long GET responses stay in Redis before a re-read
const cacheTTL = 60 * time.Second

// Cache key builders, one namespace per collection
func subscriptionCacheKey(uid string) string { return "subscription:user:" + uid }
func claimsCacheKey(uid string) string       { return "claims:user:" + uid }
func vaultCacheKey(uid string) string        { return "vault:user:" + uid }
func referralsCacheKey(uid string) string    { return "referrals:user:" + uid }

// isoTime renders the canonical textual timestamp used in every response
func isoTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// errorStatus maps the error taxonomy to HTTP status codes; anything outside
// the taxonomy is a store failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
