//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=proof_test
package proof

import (
	"context"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	AddProof(ctx context.Context, proof entities.OrderProof) (*entities.OrderProof, error)
}

// Storage объектное хранилище. Upload возвращает постоянный URL объекта.
type Storage interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
