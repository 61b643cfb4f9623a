package api

import (
	"testing"

	"nuture_backend/internal/config"
	"nuture_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	st := store.NewMemoryStore()
	r := newTestRouter(st, config.CoverageFull)

	w := doJSON(t, r, "GET", "/health", nil)
	require.Equal(t, 200, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthReportsStoreOutage(t *testing.T) {
	st := store.NewMemoryStore()
	r := newTestRouter(st, config.CoverageFull)
	st.SetHealthy(false)

	w := doJSON(t, r, "GET", "/health", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "error", decodeObject(t, w)["database"])
}
