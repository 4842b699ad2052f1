//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"courierdesk/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent)
}

type (
	GateFn     func(update entities.StatusUpdate) entities.OrderModify
	StatusGate interface {
		GetGate(status entities.OrderStatusType) (GateFn, error)
	}
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
