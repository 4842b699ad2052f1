//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_orders_test
package shop_orders

import (
	"context"
	"time"

	"courierdesk/internal/pkg/shopstub"
	"courierdesk/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Catalog interface {
	ListFrom(ctx context.Context, from time.Time, limit int) ([]shopstub.Order, error)
}
