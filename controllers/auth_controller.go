package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"nutriscan/services"
	"nutriscan/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/register
func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	success(c, http.StatusCreated, out)
}

// POST /api/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Login(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}

// POST /api/auth/check-email
func (h *AuthController) CheckEmail(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	// an empty body is a missing email, anything else malformed is a bad request
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(err)
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		_ = c.Error(utils.BadRequest("Email is required"))
		return
	}
	available, err := h.Svc.CheckEmailAvailable(c.Request.Context(), body.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, gin.H{"available": available})
}
