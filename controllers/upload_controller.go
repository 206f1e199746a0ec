package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"nutriscan/services"
	"nutriscan/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Svc *services.UploadService
}

func NewUploadController(svc *services.UploadService) *UploadController {
	return &UploadController{Svc: svc}
}

// POST /api/upload/avatar (multipart field "avatar")
func (h *UploadController) Avatar(c *gin.Context) { h.upload(c, services.UploadAvatar, "avatar") }

// POST /api/upload/food (multipart field "food")
func (h *UploadController) Food(c *gin.Context) { h.upload(c, services.UploadFood, "food") }

func (h *UploadController) upload(c *gin.Context, kind services.UploadKind, field string) {
	// headroom for the multipart envelope around the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxUploadBytes+1<<20)

	var fh *multipart.FileHeader
	f, err := c.FormFile(field)
	switch {
	case err == nil:
		fh = f
	case isTooLarge(err):
		_ = c.Error(utils.BadRequest("File too large (max 5MB)"))
		return
	}

	out, err := h.Svc.Save(c.Request.Context(), c.GetString("userID"), kind, fh, baseURL(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, out)
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if p := c.GetHeader("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + c.Request.Host
}
