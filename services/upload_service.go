package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"nutriscan/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const MaxUploadBytes = 5 << 20

type UploadKind string

const (
	UploadAvatar UploadKind = "avatar"
	UploadFood   UploadKind = "food"
)

func (k UploadKind) dir() string {
	if k == UploadFood {
		return "foods"
	}
	return "avatars"
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type UploadService struct {
	store ImageStore
	now   func() time.Time
}

func NewUploadService(store ImageStore) *UploadService {
	return &UploadService{store: store, now: time.Now}
}

// Save validates an uploaded image by its content and stores it as
// <kind>-<userID>-<unixMillis><ext>.
func (s *UploadService) Save(ctx context.Context, userID string, kind UploadKind, fh *multipart.FileHeader, baseURL string) (*UploadResult, error) {
	if fh == nil {
		return nil, utils.BadRequest("No file uploaded")
	}
	if fh.Size > MaxUploadBytes {
		return nil, utils.BadRequest("File too large (max 5MB)")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "detect upload type")
	}
	ext, ok := imageExtensions[mtype.String()]
	if !ok {
		return nil, utils.BadRequest("Only image files are allowed")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewind upload")
	}

	filename := fmt.Sprintf("%s-%s-%d%s", kind, userID, s.now().UnixMilli(), ext)
	key := kind.dir() + "/" + filename
	if err := s.store.Save(ctx, key, mtype.String(), f); err != nil {
		return nil, err
	}
	return &UploadResult{URL: s.store.URL(baseURL, key), Filename: filename}, nil
}
