package objectstorage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	retrierconfig "courierdesk/pkg/retrier"
	"courierdesk/pkg/retrier/backoff_adapter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3

	cacheControl = "public, max-age=31536000, immutable"
)

type Storage struct {
	client        client
	retrier       retrier
	bucket        string
	publicBaseURL string
}

// New publicBaseURL - адрес, по которому объекты бакета доступны снаружи (CDN или сам бакет).
func New(client client, bucket, publicBaseURL string) *Storage {
	return &Storage{
		client: client,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
			ShouldRetry:     isRetryable,
		}),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload объекты неизменяемы: ключ содержит uuid, поэтому повтор PutObject безопасен.
func (s *Storage) Upload(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	err := s.execute(ctx, "put", func(ctx context.Context) error {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(body),
			ContentLength: aws.Int64(int64(len(body))),
			ContentType:   aws.String(contentType),
			CacheControl:  aws.String(cacheControl),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway object storage, put %s: %w", key, err)
	}

	return s.URL(key), nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.execute(ctx, "delete", func(ctx context.Context) error {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway object storage, delete %s: %w", key, err)
	}
	return nil
}

func (s *Storage) URL(key string) string {
	return s.publicBaseURL + "/" + key
}

func (s *Storage) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()
	err := s.retrier.ExecuteWithContext(ctx, fn)
	ObjectStorageRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	ObjectStorageRequestsTotal.WithLabelValues(operation, result).Inc()
	return err
}

// isRetryable повторяем сетевые ошибки, 5xx и 429, остальные ответы окончательные.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var responseErr *smithyhttp.ResponseError
	if errors.As(err, &responseErr) {
		code := responseErr.HTTPStatusCode()
		return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
	}
	return true
}
