package analytics

import (
	"log"
	"net/http"
	"strconv"

	"gympay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultWindowDays = 30

type Handler struct {
	source Source
	orgID  string
}

func NewHandler(source Source, orgID string) *Handler {
	return &Handler{source: source, orgID: orgID}
}

// Overview handles GET /api/analytics/overview
func (h *Handler) Overview(c *gin.Context) {
	days := windowDays(c)

	overview, err := h.source.Overview(c.Request.Context(), h.orgID, days)
	if err != nil {
		log.Printf("analytics_overview_failed org_id=%s err=%v", h.orgID, err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Entries handles GET /api/analytics/entries
func (h *Handler) Entries(c *gin.Context) {
	days := windowDays(c)

	entries, err := h.source.Entries(c.Request.Context(), h.orgID, days)
	if err != nil {
		log.Printf("analytics_entries_failed org_id=%s err=%v", h.orgID, err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func windowDays(c *gin.Context) int {
	days := defaultWindowDays
	if raw := c.Query("days"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 && val <= 365 {
			days = val
		}
	}
	return days
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/overview", h.Overview)
		analytics.GET("/entries", h.Entries)
	}
}
