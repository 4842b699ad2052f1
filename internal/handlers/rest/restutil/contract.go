package restutil

import "courierdesk/pkg/logger"

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}
