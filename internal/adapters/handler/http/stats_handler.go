package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.WeeklyAggregator
}

func NewStatsHandler(svc *services.WeeklyAggregator) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/weekly", h.GetWeeklyStats)
}

// GetWeeklyStats godoc
// @Summary Seven-day workout and nutrition summary ending on date
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD in the reporting timezone, defaults to today"
// @Success 200 {object} domain.WeeklyStats
// @Failure 400,500 {object} map[string]string
// @Router /stats/weekly [get]
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var now time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation(domain.DayKeyLayout, dateStr, h.svc.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
			return
		}
		now = day.Add(12 * time.Hour)
	}

	stats, err := h.svc.ComputeWeeklyStats(c.Request.Context(), userID, now)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
