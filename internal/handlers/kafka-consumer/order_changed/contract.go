//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_changed_test
package order_changed

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

type ReportCache interface {
	Invalidate(ctx context.Context) error
}

type Feed interface {
	Publish(ctx context.Context, event entities.OrderEvent)
}
