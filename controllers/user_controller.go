package controllers

import (
	"net/http"

	"nutriscan/middlewares"
	"nutriscan/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc   *services.UserService
	Foods *services.FoodService
}

func NewUserController(svc *services.UserService, foods *services.FoodService) *UserController {
	return &UserController{Svc: svc, Foods: foods}
}

// GET /api/users/profile
func (h *UserController) GetProfile(c *gin.Context) {
	out, err := h.Svc.GetProfile(c.Request.Context(), middlewares.CurrentUser(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}

// PUT /api/users/profile
func (h *UserController) UpdateProfile(c *gin.Context) {
	var in services.ProfileInput
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.UpdateProfile(c.Request.Context(), middlewares.CurrentUser(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}

// DELETE /api/users/profile
func (h *UserController) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.Svc.DeleteUser(ctx, c.GetString("userID")); err != nil {
		_ = c.Error(err)
		return
	}
	// public foods created by this user just lost their owner
	h.Foods.InvalidateCatalog(ctx)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Account deleted successfully"})
}
