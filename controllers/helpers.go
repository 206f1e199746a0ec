package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

func ok(c *gin.Context, data any) { success(c, http.StatusOK, data) }

// bindJSON binds the body and hands any binding error to the error middleware.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(err)
		return false
	}
	return true
}
