//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"
)

type SessionService interface {
	Bootstrap(ctx context.Context, rawToken string) (*entities.Principal, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
