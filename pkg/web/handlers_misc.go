package web

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/PancyStudios/PancyListGo/pkg/config"
	"github.com/PancyStudios/PancyListGo/pkg/database"
	"github.com/gin-gonic/gin"
)

// search handles GET /api/search?q=
func (h *handlers) search(c *gin.Context) {
	query, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Query must be a string",
			"results": gin.H{},
		})
		return
	}

	results, err := h.svc.Search(c.Request.Context(), identity(c), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   "",
		"results": results,
	})
}

// randomTag handles GET /api/random/tag
func (h *handlers) randomTag(c *gin.Context) {
	respondData(c, config.Tags[rand.Intn(len(config.Tags))])
}

// liveFeed handles GET /api/live, upgrading to a websocket event stream
func (h *handlers) liveFeed(c *gin.Context) {
	h.hub.ServeWs(c.Writer, c.Request)
}

// status returns the service and database status
func (h *handlers) status(c *gin.Context) {
	db := database.Get()

	dbStatus, dbOnline := "🔴 | Offline", false
	latency := "n/a"
	if db != nil {
		dbStatus, dbOnline = db.GetStatus()
		if rtt, err := db.Ping(); err == nil {
			latency = rtt.Round(time.Millisecond).String()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
			"latency":  latency,
		},
		"liveClients": h.hub.ClientCount(),
	})
}

// health returns a simple health check response
func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyList Go is running",
	})
}
