// Package s3 is an implementation of blob storage on top of AWS S3 compatible service.
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/sparkdate/spark/internal/blob"
)

var log = logrus.WithField("layer", "blob").WithField("package", "s3")

// Options ...
type Options struct {
	Region string
	// Endpoint overrides AWS endpoint, e.g. for minio. Path-style addressing is used then.
	Endpoint  string
	Bucket    string
	PublicURL string
}

type api interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type storage struct {
	client    api
	bucket    string
	publicURL string
}

// New creates new instance of s3 storage.
func New(ctx context.Context, opts Options) (blob.Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newStorage(client, opts.Bucket, opts.PublicURL), nil
}

func newStorage(client api, bucket, publicURL string) storage {
	return storage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	}); err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	log.WithField("key", key).Debug("object stored")

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

func (s storage) Ping(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	}); err != nil {
		return fmt.Errorf("failed to head bucket: %w", err)
	}

	return nil
}
