package intake

import (
	"context"
	"fmt"
	"time"

	"courierdesk/internal/entities"
)

const (
	// maxPagesPerRun ограничивает один запуск, остаток заберет следующий тик.
	maxPagesPerRun = 20
	// maxPageLimit больше магазин за один вызов не отдает.
	maxPageLimit int32 = 1000
)

type Intake struct {
	gateway    ShopGateway
	repository Repository
	publisher  EventPublisher
	batchSize  int32
}

func New(
	gateway ShopGateway,
	repository Repository,
	publisher EventPublisher,
	batchSize int32,
) (*Intake, error) {
	if batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}

	return &Intake{
		gateway:    gateway,
		repository: repository,
		publisher:  publisher,
		batchSize:  batchSize,
	}, nil
}

// LastCursor created_at самого нового импортированного заказа.
func (s *Intake) LastCursor(ctx context.Context) (time.Time, error) {
	cursor, err := s.repository.LastCreatedAt(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("get import cursor: %w", err)
	}
	return cursor, nil
}

// ImportOrders забирает заказы магазина постранично начиная с cursor и
// возвращает новый курсор. Курсор включающий: заказы с created_at == cursor
// читаются повторно и отсекаются уникальностью номера, поэтому группа заказов
// с одинаковым created_at на границе страницы не теряется.
func (s *Intake) ImportOrders(ctx context.Context, cursor time.Time) (time.Time, error) {
	imported := 0
	limit := s.batchSize

	for page := 0; page < maxPagesPerRun; page++ {
		orders, err := s.gateway.GetOrdersFrom(ctx, cursor, limit)
		if err != nil {
			ImportRunsTotal.WithLabelValues("error").Inc()
			return cursor, fmt.Errorf("fetch shop orders from %s: %w", cursor.Format(time.RFC3339Nano), err)
		}
		if len(orders) == 0 {
			break
		}

		for i := range orders {
			orders[i].Status = entities.DefaultOrderStatus
			orders[i].AssignedCourierID = nil
			orders[i].OriginalCourierID = nil
			orders[i].Archived = false
		}

		created, err := s.repository.CreateBatch(ctx, orders)
		if err != nil {
			ImportRunsTotal.WithLabelValues("error").Inc()
			return cursor, fmt.Errorf("store shop orders: %w", err)
		}

		now := time.Now().UTC()
		for i := range created {
			s.publisher.Publish(ctx, entities.NewOrderEvent(entities.OrderEventCreated, nil, &created[i], now))
		}
		imported += len(created)
		ImportedOrdersTotal.Add(float64(len(created)))

		next := latestCreatedAt(orders, cursor)
		if int32(len(orders)) < limit {
			cursor = next
			break
		}
		if next.After(cursor) {
			cursor = next
			limit = s.batchSize
			continue
		}

		// полная страница целиком на курсоре, без расширения она повторится
		if limit >= maxPageLimit {
			ImportRunsTotal.WithLabelValues("error").Inc()
			return cursor, fmt.Errorf("%w: more than %d orders at %s",
				ErrCursorStuck, maxPageLimit, cursor.Format(time.RFC3339Nano))
		}
		limit = min(limit*2, maxPageLimit)
	}

	if imported > 0 {
		ImportRunsTotal.WithLabelValues("imported").Inc()
	} else {
		ImportRunsTotal.WithLabelValues("empty").Inc()
	}
	return cursor, nil
}

func latestCreatedAt(orders []entities.Order, cursor time.Time) time.Time {
	latest := cursor
	for _, o := range orders {
		if o.CreatedAt.After(latest) {
			latest = o.CreatedAt
		}
	}
	return latest
}
