//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"courierdesk/internal/entities"
	"courierdesk/internal/pkg/token"
	"courierdesk/pkg/logger"
)

type TokenParser interface {
	Parse(raw string) (token.Claims, error)
}

type ProfileLoader interface {
	GetProfile(ctx context.Context, id int64) (*entities.Courier, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
