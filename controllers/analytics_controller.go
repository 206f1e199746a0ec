// controllers/analytics_controller.go
package controllers

import (
	"strconv"

	"nutriscan/services"
	"nutriscan/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /api/analytics/summary?days=7
func (h *AnalyticsController) Summary(c *gin.Context) {
	days := services.DefaultAnalyticsDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			_ = c.Error(utils.BadRequest("days must be a number"))
			return
		}
		days = n
	}

	out, err := h.Svc.Summary(c.Request.Context(), c.GetString("userID"), days)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}
