package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierdesk/internal/entities"

	"github.com/shopspring/decimal"
)

// Options режим пакетных операций. Atomic=false: отдельная транзакция на заказ
// и остановка на первой ошибке. Atomic=true: одна транзакция на весь пакет.
type Options struct {
	Atomic bool
}

type Service struct {
	repository     Repository
	courierService CourierService
	publisher      EventPublisher
	txManager      TxManager
	atomic         bool
}

func New(
	repository Repository,
	courierService CourierService,
	publisher EventPublisher,
	txManager TxManager,
	opts Options,
) *Service {
	return &Service{
		repository:     repository,
		courierService: courierService,
		publisher:      publisher,
		txManager:      txManager,
		atomic:         opts.Atomic,
	}
}

// itemResult состояние заказа до и после. changed=false значит запись не понадобилась.
type itemResult struct {
	eventType entities.OrderEventType
	before    *entities.Order
	after     *entities.Order
	changed   bool
}

type itemFn func(ctx context.Context, order *entities.Order, now time.Time) (itemResult, error)

// Assign назначает курьера. Исходный курьер фиксируется один раз: предыдущий назначенный,
// а если его не было, то новый.
func (s *Service) Assign(ctx context.Context, ids []int64, courierID int64) (*entities.BatchResult, error) {
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}
	selection, err := normalizeSelection(ids)
	if err != nil {
		return nil, err
	}

	courier, err := s.courierService.GetCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier %d: %w", courierID, err)
	}
	if courier.Role != entities.RoleCourier {
		return nil, ErrNotCourier
	}

	return s.run(ctx, entities.BatchAssign, selection, func(ctx context.Context, order *entities.Order, _ time.Time) (itemResult, error) {
		if order.Archived {
			return itemResult{}, ErrOrderArchived
		}

		if order.Status == entities.OrderAssigned && order.OriginalCourierID != nil &&
			order.AssignedCourierID != nil && *order.AssignedCourierID == courierID {
			return itemResult{before: order, after: order}, nil
		}

		status := entities.OrderAssigned
		orderModify := entities.OrderModify{
			ID:                &order.ID,
			Status:            &status,
			AssignedCourierID: entities.Nullable(courierID),
			CollectedBy:       entities.Null[entities.CollectedByType](),
			PaymentSubType:    entities.Null[entities.PaymentSubType](),
			PartialPaidAmount: entities.Null[decimal.Decimal](),
		}
		if order.OriginalCourierID == nil {
			original := courierID
			if order.AssignedCourierID != nil {
				original = *order.AssignedCourierID
			}
			orderModify.OriginalCourierID = entities.Nullable(original)
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return itemResult{}, err
		}
		return itemResult{eventType: entities.OrderEventUpdated, before: order, after: updated, changed: true}, nil
	})
}

// Unassign снимает курьера с активного заказа. Как и при архивации, снятый курьер
// становится исходным, если исходный еще не задан.
func (s *Service) Unassign(ctx context.Context, ids []int64) (*entities.BatchResult, error) {
	selection, err := normalizeSelection(ids)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, entities.BatchUnassign, selection, func(ctx context.Context, order *entities.Order, _ time.Time) (itemResult, error) {
		if order.Archived {
			return itemResult{}, ErrOrderArchived
		}
		if order.AssignedCourierID == nil {
			return itemResult{before: order, after: order}, nil
		}

		orderModify := entities.OrderModify{
			ID:                &order.ID,
			AssignedCourierID: entities.Null[int64](),
		}
		if order.OriginalCourierID == nil {
			orderModify.OriginalCourierID = entities.Nullable(*order.AssignedCourierID)
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return itemResult{}, err
		}
		return itemResult{eventType: entities.OrderEventUpdated, before: order, after: updated, changed: true}, nil
	})
}

// Archive снимает заказ с курьера, предварительно сохранив его как исходного, если тот еще не задан.
func (s *Service) Archive(ctx context.Context, ids []int64) (*entities.BatchResult, error) {
	selection, err := normalizeSelection(ids)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, entities.BatchArchive, selection, func(ctx context.Context, order *entities.Order, now time.Time) (itemResult, error) {
		if order.Archived {
			return itemResult{before: order, after: order}, nil
		}

		archived := true
		orderModify := entities.OrderModify{
			ID:                &order.ID,
			Archived:          &archived,
			ArchivedAt:        entities.Nullable(now),
			AssignedCourierID: entities.Null[int64](),
		}
		if order.OriginalCourierID == nil && order.AssignedCourierID != nil {
			orderModify.OriginalCourierID = entities.Nullable(*order.AssignedCourierID)
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return itemResult{}, err
		}
		return itemResult{eventType: entities.OrderEventUpdated, before: order, after: updated, changed: true}, nil
	})
}

// Restore возвращает заказ исходному курьеру. original_courier_id только читается.
func (s *Service) Restore(ctx context.Context, ids []int64) (*entities.BatchResult, error) {
	selection, err := normalizeSelection(ids)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, entities.BatchRestore, selection, func(ctx context.Context, order *entities.Order, _ time.Time) (itemResult, error) {
		if !order.Archived {
			return itemResult{before: order, after: order}, nil
		}

		archived := false
		orderModify := entities.OrderModify{
			ID:                &order.ID,
			Archived:          &archived,
			ArchivedAt:        entities.Null[time.Time](),
			AssignedCourierID: entities.NullableFromPtr(order.OriginalCourierID),
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return itemResult{}, err
		}
		return itemResult{eventType: entities.OrderEventUpdated, before: order, after: updated, changed: true}, nil
	})
}

// Delete удаляет заказ вместе с подтверждениями доставки.
func (s *Service) Delete(ctx context.Context, ids []int64) (*entities.BatchResult, error) {
	selection, err := normalizeSelection(ids)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, entities.BatchDelete, selection, func(ctx context.Context, order *entities.Order, _ time.Time) (itemResult, error) {
		if err := s.repository.Delete(ctx, order.ID); err != nil {
			return itemResult{}, err
		}
		return itemResult{eventType: entities.OrderEventDeleted, before: order, changed: true}, nil
	})
}

func (s *Service) run(
	ctx context.Context,
	op entities.BatchOperation,
	ids []int64,
	fn itemFn,
) (*entities.BatchResult, error) {
	result := entities.NewBatchResult(op, s.atomic, ids)

	var events []entities.OrderEvent
	if s.atomic {
		events = s.runAtomic(ctx, result, fn)
	} else {
		events = s.runSequential(ctx, result, fn)
	}

	for _, event := range events {
		s.publisher.Publish(ctx, event)
	}
	for _, item := range result.Items {
		DispatchItemsTotal.WithLabelValues(op.String(), item.Status.String()).Inc()
	}

	return result, nil
}

// runSequential каждая позиция в своей транзакции, после первой ошибки остальные пропускаются.
func (s *Service) runSequential(ctx context.Context, result *entities.BatchResult, fn itemFn) []entities.OrderEvent {
	events := make([]entities.OrderEvent, 0, len(result.Items))

	for i := range result.Items {
		item := &result.Items[i]

		var res itemResult
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			res, err = s.applyItem(ctx, item.OrderID, fn)
			return err
		})
		if err != nil {
			item.Status = entities.BatchItemFailed
			item.Err = fmt.Errorf("%s order %d: %w", result.Operation, item.OrderID, err)
			break
		}

		item.Status = statusOf(res)
		if res.changed {
			events = append(events, entities.NewOrderEvent(res.eventType, res.before, res.after, time.Now().UTC()))
		}
	}
	return events
}

// runAtomic весь пакет в одной транзакции. При ошибке уже примененные позиции откатываются.
func (s *Service) runAtomic(ctx context.Context, result *entities.BatchResult, fn itemFn) []entities.OrderEvent {
	pending := make([]itemResult, len(result.Items))
	failedAt := -1

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for i := range result.Items {
			item := &result.Items[i]

			res, err := s.applyItem(ctx, item.OrderID, fn)
			if err != nil {
				failedAt = i
				item.Status = entities.BatchItemFailed
				item.Err = fmt.Errorf("%s order %d: %w", result.Operation, item.OrderID, err)
				return item.Err
			}

			item.Status = statusOf(res)
			pending[i] = res
		}
		return nil
	})
	if err != nil {
		for i := range result.Items {
			item := &result.Items[i]
			if i == failedAt {
				continue
			}
			if item.Status == entities.BatchItemApplied || item.Status == entities.BatchItemUnchanged {
				item.Status = entities.BatchItemRolledBack
				if failedAt < 0 {
					item.Err = fmt.Errorf("%s commit: %w", result.Operation, err)
				}
			}
		}
		return nil
	}

	events := make([]entities.OrderEvent, 0, len(pending))
	now := time.Now().UTC()
	for _, res := range pending {
		if res.changed {
			events = append(events, entities.NewOrderEvent(res.eventType, res.before, res.after, now))
		}
	}
	return events
}

func (s *Service) applyItem(ctx context.Context, id int64, fn itemFn) (itemResult, error) {
	order, err := s.repository.GetForUpdate(ctx, id)
	if err != nil {
		return itemResult{}, fmt.Errorf("get order: %w", err)
	}

	res, err := fn(ctx, order, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrOrderArchived) {
			return itemResult{}, err
		}
		return itemResult{}, fmt.Errorf("write order: %w", err)
	}
	return res, nil
}

func statusOf(res itemResult) entities.BatchItemStatus {
	if res.changed {
		return entities.BatchItemApplied
	}
	return entities.BatchItemUnchanged
}
