package order

import (
	"context"
	"fmt"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/internal/pkg/reconcile"
)

type Service struct {
	repository Repository
	publisher  EventPublisher
	statusGate StatusGate
	txManager  TxManager
}

func New(repository Repository, publisher EventPublisher, statusGate StatusGate, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		statusGate: statusGate,
		txManager:  txManager,
	}
}

func (s *Service) GetOrder(ctx context.Context, principal *entities.Principal, id int64) (*entities.OrderView, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if !principal.CanAccess(order) {
		return nil, ErrForbidden
	}

	view := reconcile.View(*order)
	return &view, nil
}

// ListOrders для курьера фильтр принудительно сужается до его активных заказов.
func (s *Service) ListOrders(
	ctx context.Context,
	principal *entities.Principal,
	filter entities.OrderFilter,
) ([]entities.OrderView, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	if !principal.IsAdmin() {
		notArchived := false
		userID := principal.UserID
		filter.CourierIDs = nil
		filter.AssignedTo = &userID
		filter.Archived = &notArchived
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]entities.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, reconcile.View(order))
	}
	return views, nil
}

// UpdateOrder админская правка клиентских полей, стоимости и заметок.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.OrderView, error) {
	if err := validateOrderModify(orderModify); err != nil {
		return nil, err
	}

	var before, after *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetForUpdate(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order %d: %w", *orderModify.ID, err)
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order %d: %w", *orderModify.ID, err)
		}

		before, after = order, updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, entities.NewOrderEvent(entities.OrderEventUpdated, before, after, time.Now().UTC()))

	view := reconcile.View(*after)
	return &view, nil
}

// UpdateStatus смена статуса курьером. Переходы не ограничены графом,
// но поля сбора денег приводятся к статусу через StatusGate.
func (s *Service) UpdateStatus(
	ctx context.Context,
	principal *entities.Principal,
	update entities.StatusUpdate,
) (*entities.OrderView, error) {
	if err := validateStatusUpdate(update); err != nil {
		return nil, err
	}

	gate, err := s.statusGate.GetGate(update.Status)
	if err != nil {
		return nil, err
	}

	var before, after *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetForUpdate(ctx, update.OrderID)
		if err != nil {
			return fmt.Errorf("get order %d: %w", update.OrderID, err)
		}
		if principal.IsAdmin() && order.Archived {
			return ErrOrderArchived
		}
		if !principal.CanAccess(order) {
			return ErrForbidden
		}

		orderModify := gate(update)
		orderModify.ID = &order.ID

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order %d status: %w", order.ID, err)
		}

		before, after = order, updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, entities.NewOrderEvent(entities.OrderEventUpdated, before, after, time.Now().UTC()))

	view := reconcile.View(*after)
	return &view, nil
}

// PreviewTotal считает обе формулы по еще не сохраненным значениям формы.
func (s *Service) PreviewTotal(
	ctx context.Context,
	principal *entities.Principal,
	id int64,
	input entities.PreviewInput,
) (*entities.PreviewResult, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}
	if !input.Status.IsValid() {
		return nil, ErrUndefinedStatus
	}
	if input.DeliveryFee.IsNegative() || input.PartialPaidAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if !principal.CanAccess(order) {
		return nil, ErrForbidden
	}

	preview := reconcile.PreviewTotalAmount(order, input.DeliveryFee, input.PartialPaidAmount, input.Status)

	candidate := *order
	candidate.Status = input.Status
	candidate.DeliveryFee = &input.DeliveryFee
	candidate.PartialPaidAmount = &input.PartialPaidAmount
	if !input.Status.AllowsCollection() {
		candidate.PartialPaidAmount = nil
	}
	persisted := reconcile.TotalCourierAmount(&candidate)

	return &entities.PreviewResult{
		OrderID:        order.ID,
		PreviewTotal:   preview,
		PersistedTotal: persisted,
		Diverges:       !preview.Equal(persisted),
	}, nil
}
