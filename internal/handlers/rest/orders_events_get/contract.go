//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_events_get_test
package orders_events_get

import (
	"courierdesk/internal/service/feed"
	"courierdesk/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Subscribe(filter feed.Filter) *feed.Subscription
}
