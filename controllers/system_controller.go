package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemController struct {
	DB *gorm.DB
}

func NewSystemController(db *gorm.DB) *SystemController {
	return &SystemController{DB: db}
}

// GET /
func (h *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to NutriScan API"})
}

// GET /api
func (h *SystemController) APIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "NutriScan API is running"})
}

// GET /healthz
func (h *SystemController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
