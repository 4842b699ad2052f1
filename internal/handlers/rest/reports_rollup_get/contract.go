//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reports_rollup_get_test
package reports_rollup_get

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
	Rollup(ctx context.Context, filter entities.OrderFilter, period entities.RollupPeriod) ([]entities.RollupBucket, error)
}
