package controllers

import (
	"net/http"

	"nutriscan/middlewares"
	"nutriscan/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

// GET /api/foods?type=&search=
func (h *FoodController) List(c *gin.Context) {
	var q services.FoodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(err)
		return
	}
	foods, err := h.Svc.List(c.Request.Context(), c.GetString("userID"), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "results": len(foods), "data": foods})
}

// POST /api/foods
func (h *FoodController) Create(c *gin.Context) {
	var in services.CreateFoodInput
	if !bindJSON(c, &in) {
		return
	}
	food, err := h.Svc.Create(c.Request.Context(), middlewares.CurrentUser(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	success(c, http.StatusCreated, food)
}

// PATCH /api/foods/:id
func (h *FoodController) Update(c *gin.Context) {
	var in services.UpdateFoodInput
	if !bindJSON(c, &in) {
		return
	}
	food, err := h.Svc.Update(c.Request.Context(), middlewares.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, food)
}

// DELETE /api/foods/:id
func (h *FoodController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middlewares.CurrentUser(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
