package status_gate

import (
	"fmt"

	"courierdesk/internal/entities"
	"courierdesk/internal/service/order"

	"github.com/shopspring/decimal"
)

// StatusGateFactory по статусу выбирает, какие поля сбора денег попадут в обновление.
type StatusGateFactory struct{}

func New() *StatusGateFactory {
	return &StatusGateFactory{}
}

func (f *StatusGateFactory) GetGate(status entities.OrderStatusType) (order.GateFn, error) {
	switch {
	case status == entities.OrderAssigned:
		return f.assignedGate, nil
	case status.AllowsCollection():
		return f.collectionGate, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// assignedGate деньги еще не собирались, поля сбора обнуляются.
func (f *StatusGateFactory) assignedGate(update entities.StatusUpdate) entities.OrderModify {
	orderModify := baseModify(update)
	orderModify.CollectedBy = entities.Null[entities.CollectedByType]()
	orderModify.PaymentSubType = entities.Null[entities.PaymentSubType]()
	orderModify.PartialPaidAmount = entities.Null[decimal.Decimal]()
	return orderModify
}

// collectionGate подтип оплаты хранится только если деньги взял курьер.
func (f *StatusGateFactory) collectionGate(update entities.StatusUpdate) entities.OrderModify {
	orderModify := baseModify(update)
	orderModify.CollectedBy = entities.NullableFromPtr(update.CollectedBy)
	orderModify.PartialPaidAmount = entities.NullableFromPtr(update.PartialPaidAmount)

	if update.CollectedBy != nil && *update.CollectedBy == entities.CollectedByCourier {
		orderModify.PaymentSubType = entities.NullableFromPtr(update.PaymentSubType)
	} else {
		orderModify.PaymentSubType = entities.Null[entities.PaymentSubType]()
	}
	return orderModify
}

func baseModify(update entities.StatusUpdate) entities.OrderModify {
	status := update.Status
	orderModify := entities.OrderModify{
		ID:              &update.OrderID,
		Status:          &status,
		Notes:           update.Notes,
		InternalComment: update.InternalComment,
	}
	if update.DeliveryFee != nil {
		orderModify.DeliveryFee = entities.Nullable(*update.DeliveryFee)
	}
	return orderModify
}
