// Package reconcile считает, сколько денег числится за курьером по заказу.
// Две формулы намеренно разные: сохраненная (TotalCourierAmount) и предпросмотр формы
// до сохранения (PreviewTotalAmount). Функции чистые, без ввода-вывода.
package reconcile

import (
	"strings"

	"courierdesk/internal/entities"

	"github.com/shopspring/decimal"
)

// CourierOrderAmount стоимость товара, которую курьер получил от клиента.
// Частичная оплата важнее статуса.
func CourierOrderAmount(order *entities.Order) decimal.Decimal {
	if order.PartialPaidAmount != nil && order.PartialPaidAmount.IsPositive() {
		return *order.PartialPaidAmount
	}

	switch order.Status {
	case entities.OrderDelivered, entities.OrderPartial, entities.OrderHandToHand:
		return order.TotalOrderFees
	default:
		return decimal.Zero
	}
}

// TotalCourierAmount сохраненная сумма по заказу. Доставка прибавляется всегда,
// стоимость товара не учитывается для отмен и возвратов.
func TotalCourierAmount(order *entities.Order) decimal.Decimal {
	orderAmount := decimal.Zero
	switch order.Status {
	case entities.OrderCanceled, entities.OrderReturn:
	default:
		orderAmount = CourierOrderAmount(order)
	}
	return orderAmount.Add(positiveOrZero(order.DeliveryFee))
}

// PreviewTotalAmount сумма для формы до сохранения. Для отмен, возвратов, передачи из рук в руки
// и частичного получения показывает ноль, пока курьер не ввел суммы.
func PreviewTotalAmount(
	order *entities.Order,
	deliveryFee decimal.Decimal,
	partialAmount decimal.Decimal,
	status entities.OrderStatusType,
) decimal.Decimal {
	switch status {
	case entities.OrderCanceled, entities.OrderReturn, entities.OrderHandToHand, entities.OrderReceivingPart:
		if deliveryFee.IsZero() && partialAmount.IsZero() {
			return decimal.Zero
		}
		return deliveryFee.Add(partialAmount)
	case entities.OrderPartial:
		if partialAmount.IsPositive() {
			return partialAmount
		}
		return decimal.Zero
	default:
		return order.TotalOrderFees
	}
}

// NormalizePaymentMethod сводит способ оплаты из импорта к cash|paymob|valu|other.
// valu проверяется первым: "paymob.valu" это valu. Сравнение с учетом регистра, cash только точное.
func NormalizePaymentMethod(method string) entities.PaymentBucket {
	switch {
	case strings.Contains(method, "valu"):
		return entities.PaymentBucketValu
	case strings.Contains(method, "paymob"):
		return entities.PaymentBucketPaymob
	case method == "cash":
		return entities.PaymentBucketCash
	default:
		return entities.PaymentBucketOther
	}
}

// AttributePayment приоритет: подтип оплаты, затем сборщик, затем нормализованный способ.
func AttributePayment(order *entities.Order) entities.PaymentAttribution {
	if order.PaymentSubType != nil && *order.PaymentSubType != "" {
		return entities.PaymentAttribution(*order.PaymentSubType)
	}
	if order.CollectedBy != nil && *order.CollectedBy != "" {
		return entities.PaymentAttribution(*order.CollectedBy)
	}
	return entities.PaymentAttribution(NormalizePaymentMethod(order.PaymentMethod))
}

// IsCourierHeld деньги на руках у курьера: любой подтип, сбор курьером или наличные.
func IsCourierHeld(order *entities.Order) bool {
	switch AttributePayment(order) {
	case entities.PaymentAttribution(entities.PaymentOnHand),
		entities.PaymentAttribution(entities.PaymentInstapay),
		entities.PaymentAttribution(entities.PaymentWallet),
		entities.PaymentAttribution(entities.PaymentVisaMachine),
		entities.PaymentAttribution(entities.CollectedByCourier),
		entities.PaymentAttribution(entities.PaymentBucketCash):
		return true
	default:
		return false
	}
}

// DeliveryFee отрицательные и пустые значения считаются нулем.
func DeliveryFee(order *entities.Order) decimal.Decimal {
	return positiveOrZero(order.DeliveryFee)
}

// View заказ с вычисленными суммами.
func View(order entities.Order) entities.OrderView {
	return entities.OrderView{
		Order:              order,
		CourierOrderAmount: CourierOrderAmount(&order),
		TotalCourierAmount: TotalCourierAmount(&order),
		ProofCount:         len(order.Proofs),
	}
}

func positiveOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil || !v.IsPositive() {
		return decimal.Zero
	}
	return *v
}
