//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=objectstorage_test
package objectstorage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
