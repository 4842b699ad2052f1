package order

import (
	"strings"

	"courierdesk/internal/entities"

	"github.com/shopspring/decimal"
)

const maxListLimit = 1000

func isValidOrderID(id int64) bool {
	return id > 0
}

func isNonNegative(v *decimal.Decimal) bool {
	return v == nil || !v.IsNegative()
}

func validateStatusUpdate(update entities.StatusUpdate) error {
	if !isValidOrderID(update.OrderID) {
		return ErrInvalidOrderID
	}
	if !update.Status.IsValid() {
		return ErrUndefinedStatus
	}
	if !isNonNegative(update.DeliveryFee) || !isNonNegative(update.PartialPaidAmount) {
		return ErrNegativeAmount
	}
	if update.CollectedBy != nil && !update.CollectedBy.IsValid() {
		return ErrInvalidCollectedBy
	}
	if update.PaymentSubType != nil && !update.PaymentSubType.IsValid() {
		return ErrInvalidPaymentSubType
	}
	if update.Status.AllowsCollection() &&
		update.CollectedBy != nil && *update.CollectedBy == entities.CollectedByCourier &&
		update.PaymentSubType == nil {
		return ErrSubTypeRequired
	}
	return nil
}

// validateOrderModify админская правка: клиентские поля, стоимость, заметки.
// Поля курьера и провенанса здесь не принимаются.
func validateOrderModify(m entities.OrderModify) error {
	if m.ID == nil {
		return ErrMissingRequiredFields
	}
	if !isValidOrderID(*m.ID) {
		return ErrInvalidOrderID
	}
	if m.Status != nil || m.DeliveryFee != nil || m.PartialPaidAmount != nil || m.CollectedBy != nil ||
		m.PaymentSubType != nil || m.AssignedCourierID != nil || m.OriginalCourierID != nil ||
		m.Archived != nil || m.ArchivedAt != nil {
		return ErrReadOnlyField
	}
	if m.IsEmpty() {
		return ErrNothingToUpdate
	}
	if !isNonNegative(m.TotalOrderFees) {
		return ErrNegativeAmount
	}
	if m.CustomerName != nil && strings.TrimSpace(*m.CustomerName) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

func validateFilter(f entities.OrderFilter) error {
	if f.Limit > maxListLimit {
		return ErrInvalidFilter
	}
	for _, status := range f.Statuses {
		if !status.IsValid() {
			return ErrUndefinedStatus
		}
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedTo.Before(*f.CreatedFrom) {
		return ErrInvalidFilter
	}
	if f.UpdatedFrom != nil && f.UpdatedTo != nil && f.UpdatedTo.Before(*f.UpdatedFrom) {
		return ErrInvalidFilter
	}
	return nil
}
