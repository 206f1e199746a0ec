package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

// ImageStore persists uploaded images under a slash-separated key.
type ImageStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	// URL returns the public address of key; baseURL is the API's own origin.
	URL(baseURL, key string) string
}

// LocalImageStore writes under a directory that the router serves at /uploads.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", dir)
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Dir() string { return s.dir }

func (s *LocalImageStore) Save(_ context.Context, key, _ string, body io.Reader) error {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create upload subdir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create upload file")
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(path)
		return errors.Wrap(err, "write upload file")
	}
	return f.Close()
}

func (s *LocalImageStore) URL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/uploads/" + key
}

type S3ImageStore struct {
	client *s3.Client
	bucket string
	cdnURL string
}

func NewS3ImageStore(ctx context.Context, region, bucket, cdnURL string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "load AWS config for S3")
	}
	return &S3ImageStore{client: s3.NewFromConfig(cfg), bucket: bucket, cdnURL: cdnURL}, nil
}

func (s *S3ImageStore) Save(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return errors.Wrap(err, "upload to S3")
	}
	return nil
}

func (s *S3ImageStore) URL(_, key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cdnURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
