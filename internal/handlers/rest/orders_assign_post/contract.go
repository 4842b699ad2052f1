//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_assign_post_test
package orders_assign_post

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
	Assign(ctx context.Context, ids []int64, courierID int64) (*entities.BatchResult, error)
}
