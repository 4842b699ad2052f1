//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"
	"time"

	"courierdesk/internal/entities"
)

type ShopGateway interface {
	GetOrdersFrom(ctx context.Context, from time.Time, limit int32) ([]entities.Order, error)
}

type Repository interface {
	CreateBatch(ctx context.Context, orders []entities.Order) ([]entities.Order, error)
	LastCreatedAt(ctx context.Context) (time.Time, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent)
}
