package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(MaxUploadBytes)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func newUploadService(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)
	svc := NewUploadService(store)
	svc.now = clock
	return svc, dir
}

func TestUploadServiceSavesImage(t *testing.T) {
	svc, dir := newUploadService(t)

	// the extension comes from the content, not the client's filename
	fh := fileHeader(t, "avatar", "me.jpg", pngHeader)
	out, err := svc.Save(context.Background(), "u1", UploadAvatar, fh, "http://localhost:8080/")
	require.NoError(t, err)

	wantName := "avatar-u1-1749996000000.png"
	assert.Equal(t, wantName, out.Filename)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/"+wantName, out.URL)

	stored, err := os.ReadFile(filepath.Join(dir, "avatars", wantName))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUploadServiceFoodKind(t *testing.T) {
	svc, dir := newUploadService(t)

	out, err := svc.Save(context.Background(), "u2", UploadFood, fileHeader(t, "food", "dish.png", pngHeader), "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/uploads/foods/food-u2-1749996000000.png", out.URL)
	assert.FileExists(t, filepath.Join(dir, "foods", out.Filename))
}

func TestUploadServiceRejects(t *testing.T) {
	svc, _ := newUploadService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		fh   *multipart.FileHeader
		msg  string
	}{
		{"missing file", nil, "No file uploaded"},
		{"too large", &multipart.FileHeader{Filename: "big.png", Size: MaxUploadBytes + 1}, "File too large (max 5MB)"},
		{"not an image", fileHeader(t, "avatar", "notes.png", []byte("just some text, not a picture")), "Only image files are allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, "u1", UploadAvatar, tt.fh, "http://localhost")
			assertStatus(t, err, http.StatusBadRequest)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}
