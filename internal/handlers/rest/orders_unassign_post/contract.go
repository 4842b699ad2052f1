//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_unassign_post_test
package orders_unassign_post

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
	Unassign(ctx context.Context, ids []int64) (*entities.BatchResult, error)
}
