// Package storage provides the blob store client for uploaded images.
// Objects live in an S3-compatible bucket (Cloudflare R2 in production)
// and are served publicly under a configured base URL.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jsprime/prime-cms/config"
)

// ObjectStore is the write side of the blob store. Handlers depend on
// this interface so tests can substitute a fake.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
}

// S3Store talks to an S3-compatible bucket. Keys are never reused for
// different content, so objects are uploaded with a long-lived
// Cache-Control directive.
type S3Store struct {
	client       *s3.Client
	bucket       string
	cacheControl string
}

// NewS3Store builds the process-wide blob client from configuration.
func NewS3Store(ctx context.Context) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.GetBlobRegion()),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.GetBlobAccessKey(),
			config.GetBlobSecretKey(),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.GetBlobEndpoint(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3Store{
		client:       client,
		bucket:       config.GetBlobBucket(),
		cacheControl: fmt.Sprintf("public, max-age=%d", config.GetBlobCacheTTL()),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(s.cacheControl),
	})
	return err
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
