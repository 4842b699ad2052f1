package s3client

import (
	"context"
	"fmt"
	"time"

	"courierdesk/internal/pkg/config"
	"courierdesk/pkg/logger"
	retrierconfig "courierdesk/pkg/retrier"
	"courierdesk/pkg/retrier/backoff_adapter"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = 1 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient клиент S3-совместимого хранилища. Без ключей используется цепочка
// учетных данных окружения, с Endpoint - MinIO и подобные.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.ObjectStorage) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		// повторы делает objectstorage, встроенный ретраер SDK отключен
		o.RetryMaxAttempts = 1
	})

	s3Log := log.With(
		logger.NewField("endpoint", cfg.Endpoint),
		logger.NewField("bucket", cfg.Bucket),
	)

	err = pingBucket(ctx, s3Log, client, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("object storage connection: %w", err)
	}

	return client, nil
}

func pingBucket(ctx context.Context, log logger.Logger, client *s3.Client, bucket string) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting object storage connection")

		_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("object storage connection failed after retries")
		return fmt.Errorf("failed to head bucket %q: %w", bucket, err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("object storage connection established")
	return nil
}
