package controllers

import (
	"net/http"
	"time"

	"nutriscan/services"
	"nutriscan/utils"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

// POST /api/logs
func (h *LogController) Add(c *gin.Context) {
	var in services.AddLogInput
	if !bindJSON(c, &in) {
		return
	}
	entry, err := h.Svc.Add(c.Request.Context(), c.GetString("userID"), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	success(c, http.StatusCreated, entry)
}

// GET /api/logs/today?date=YYYY-MM-DD
func (h *LogController) Daily(c *gin.Context) {
	var day time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDay(raw, time.Local)
		if err != nil {
			_ = c.Error(utils.BadRequest("invalid date, expected YYYY-MM-DD"))
			return
		}
		day = d
	}
	out, err := h.Svc.DailySummary(c.Request.Context(), c.GetString("userID"), day)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}

// GET /api/logs/recent
func (h *LogController) Recent(c *gin.Context) {
	logs, err := h.Svc.Recent(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, logs)
}

// DELETE /api/logs/:logId
func (h *LogController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("logId")); err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, gin.H{"deleted": true})
}
