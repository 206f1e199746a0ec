// controllers/metric_controller.go
package controllers

import (
	"nutriscan/services"

	"github.com/gin-gonic/gin"
)

type MetricController struct {
	Svc *services.MetricService
}

func NewMetricController(svc *services.MetricService) *MetricController {
	return &MetricController{Svc: svc}
}

// PUT /api/metrics
// Upserts hydration, sleep and weight for one day (today by default).
func (h *MetricController) Upsert(c *gin.Context) {
	var in services.MetricInput
	if !bindJSON(c, &in) {
		return
	}
	m, err := h.Svc.Upsert(c.Request.Context(), c.GetString("userID"), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, m)
}

// GET /api/metrics?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *MetricController) List(c *gin.Context) {
	var r services.MetricRange
	if err := c.ShouldBindQuery(&r); err != nil {
		_ = c.Error(err)
		return
	}
	out, err := h.Svc.List(c.Request.Context(), c.GetString("userID"), r)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}
