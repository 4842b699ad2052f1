package order_import

import (
	"context"
	"time"

	"courierdesk/pkg/logger"
)

type Service interface {
	ImportOrders(ctx context.Context, cursor time.Time) (time.Time, error)
	LastCursor(ctx context.Context) (time.Time, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type OrderImport struct {
	log      taskLogger
	service  Service
	interval time.Duration
	cursor   time.Time
}

func NewOrderImport(ctx context.Context, log logger.Logger, service Service, interval time.Duration) (*OrderImport, error) {
	cursor, err := service.LastCursor(ctx)
	if err != nil {
		return nil, err
	}

	return &OrderImport{
		log:      log.With(logger.NewField("task", "order import")),
		service:  service,
		interval: interval,
		cursor:   cursor,
	}, nil
}

func (o *OrderImport) TTL() time.Duration {
	return o.interval
}

// Do курсор сдвигается только вперед, даже если импорт вернул ошибку на середине.
func (o *OrderImport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	newCursor, err := o.service.ImportOrders(ctxWithTimeout, o.cursor)

	if !newCursor.IsZero() && newCursor.After(o.cursor) {
		o.log.Info("import cursor advanced",
			logger.NewField("from", o.cursor),
			logger.NewField("to", newCursor),
		)
		o.cursor = newCursor
	}

	return err
}

func (o *OrderImport) Info() string {
	return "order import"
}
