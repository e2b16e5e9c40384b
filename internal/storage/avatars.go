package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AvatarStore сохраняет файл аватара и возвращает его публичный URL
type AvatarStore interface {
	Upload(ctx context.Context, body io.Reader, contentType string) (string, error)
}

// S3AvatarStore кладёт аватары в S3-совместимое хранилище (MinIO и т.п.)
type S3AvatarStore struct {
	bucket        string
	region        string
	baseEndpoint  string
	publicBaseURL string
	accessKey     string
	secretKey     string
}

func NewS3AvatarStore() *S3AvatarStore {
	return &S3AvatarStore{
		bucket:        os.Getenv("S3_BUCKET"),
		region:        os.Getenv("S3_REGION"),
		baseEndpoint:  os.Getenv("S3_ENDPOINT"),
		publicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		accessKey:     os.Getenv("S3_ACCESS_KEY"),
		secretKey:     os.Getenv("S3_SECRET_KEY"),
	}
}

func (s *S3AvatarStore) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.accessKey,
			s.secretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.baseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.baseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func avatarKey() string {
	return fmt.Sprintf("avatars/%v", uuid.New())
}

func (s *S3AvatarStore) Upload(ctx context.Context, body io.Reader, contentType string) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	key := avatarKey()
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(s.publicBaseURL, "/"), key), nil
}
