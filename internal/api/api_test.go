package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"nuture_backend/internal/config"
	"nuture_backend/internal/identity"
	"nuture_backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full route set over an in-memory store, soft-auth
// resolution and no Redis, mirroring cmd/server.
func newTestRouter(st *store.MemoryStore, mode config.CoverageMode) *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := identity.NewSoftAuth(st)

	r := gin.New()
	r.GET("/health", HealthHandler(st))
	r.POST("/signup", SignupHandler(resolver))
	r.POST("/login", LoginHandler(resolver, "test-secret"))
	r.POST("/subscribe", SubscribeHandler(st, nil))
	r.GET("/subscription/:uid", GetSubscriptionHandler(st, nil, mode))
	r.POST("/claims", SubmitClaimHandler(st, nil, mode))
	r.GET("/claims/:uid", GetClaimsHandler(st, nil))
	r.POST("/vault", AddVaultRecordHandler(st, nil))
	r.GET("/vault/:uid", GetVaultHandler(st, nil))
	r.GET("/referrals/:uid", GetReferralsHandler(st, nil))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// signupUser registers a user through the API and returns the new uid
func signupUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/signup", gin.H{
		"email":    email,
		"password": "hunter22",
		"fullName": "Ada Test",
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	uid, ok := decodeObject(t, w)["uid"].(string)
	require.True(t, ok)
	require.NotEmpty(t, uid)
	return uid
}
