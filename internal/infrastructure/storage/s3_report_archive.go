package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"lims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3ReportArchive stores exported reports as objects in a single bucket.
type S3ReportArchive struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

var _ interfaces.IReportArchive = (*S3ReportArchive)(nil)

// NewS3Client builds an S3 client, optionally pointed at an S3-compatible endpoint (MinIO, LocalStack).
func NewS3Client(cfg aws.Config, endpoint string, pathStyle bool) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = pathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewS3ReportArchive(client *s3.Client, bucket string, logger *zap.Logger) (*S3ReportArchive, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("s3 bucket required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3ReportArchive{client: client, bucket: bucket, logger: logger}, nil
}

func (a *S3ReportArchive) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}
	a.logger.Debug("[report][s3] object stored", zap.String("bucket", a.bucket), zap.String("key", key), zap.Int("bytes", len(body)))
	return key, nil
}
