package api

import (
	"net/http"
	"time"

	"nuture_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness and store reachability
func HealthHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := "connected"
		if err := st.Ping(c.Request.Context()); err != nil {
			database = "error"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "online",
			"database":  database,
			"timestamp": isoTime(time.Now()),
		})
	}
}
