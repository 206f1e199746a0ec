// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"nutriscan/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Users *services.UserService
}

func NewDevController(users *services.UserService) *DevController {
	return &DevController{Users: users}
}

// POST /api/dev/toggle-role
func (d *DevController) ToggleRole(c *gin.Context) {
	role, err := d.Users.ToggleRole(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Role switched to " + role,
		"data":    gin.H{"role": role},
	})
}
