package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/GreenvaleServices/landscape-platform/internal/config"
)

// Uploader is the object-storage port handlers depend on.
type Uploader interface {
	Put(ctx context.Context, folder, ext, contentType string, data []byte) (string, error)
}

type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(cfg *config.Config) *S3Storage {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &S3Storage{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

// Put stores the blob under a fresh uuid key and returns the key.
func (s *S3Storage) Put(ctx context.Context, folder, ext, contentType string, data []byte) (string, error) {
	key := path.Join(folder, uuid.NewString()+ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return key, nil
}

var _ Uploader = (*S3Storage)(nil)
