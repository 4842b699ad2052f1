package order_events

import (
	"courierdesk/pkg/logger"
)

type publisherLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
