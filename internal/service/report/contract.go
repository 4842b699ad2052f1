//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"
)

type Repository interface {
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type CourierRepository interface {
	GetAll(ctx context.Context, role *entities.CourierRole) ([]entities.Courier, error)
}

// Cache кэш сводок. Get возвращает ErrCacheMiss, если записи нет.
type Cache interface {
	GetSummary(ctx context.Context, filter entities.OrderFilter) (*entities.ReportSummary, error)
	SetSummary(ctx context.Context, filter entities.OrderFilter, summary *entities.ReportSummary) error
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type PeriodFactory interface {
	PeriodStart(period entities.RollupPeriod, t time.Time) time.Time
	Location() *time.Location
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
