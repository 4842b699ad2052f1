//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_preview_post_test
package order_preview_post

import (
	"context"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PreviewTotal(ctx context.Context, principal *entities.Principal, id int64, input entities.PreviewInput) (*entities.PreviewResult, error)
}
