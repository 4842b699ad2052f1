package shop

import (
	"errors"
	"fmt"
	"strings"

	"courierdesk/internal/entities"
	proto "courierdesk/internal/generated/proto/shop/v1"

	"github.com/shopspring/decimal"
)

var (
	errMissingOrderNumber = errors.New("missing order number")
	errMissingCreatedAt   = errors.New("missing created_at")
	errInvalidFees        = errors.New("invalid total_order_fees")
)

// toDomainList битые записи отбрасываются, остальные сохраняют порядок ответа.
func toDomainList(resp *proto.GetOrdersResponse) []entities.Order {
	if resp == nil || len(resp.GetOrders()) == 0 {
		return []entities.Order{}
	}

	orders := make([]entities.Order, 0, len(resp.GetOrders()))
	for _, protoOrder := range resp.GetOrders() {
		order, err := toDomain(protoOrder)
		if err != nil {
			GatewayRejectedOrdersTotal.WithLabelValues(serviceName, rejectReason(err)).Inc()
			continue
		}
		orders = append(orders, *order)
	}
	return orders
}

func toDomain(protoOrder *proto.Order) (*entities.Order, error) {
	if protoOrder == nil || strings.TrimSpace(protoOrder.GetOrderNumber()) == "" {
		return nil, errMissingOrderNumber
	}
	if protoOrder.GetCreatedAt() == nil {
		return nil, errMissingCreatedAt
	}

	fees, err := decimal.NewFromString(protoOrder.GetTotalOrderFees())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidFees, err)
	}
	if fees.IsNegative() {
		return nil, errInvalidFees
	}

	return &entities.Order{
		OrderNumber:    strings.TrimSpace(protoOrder.GetOrderNumber()),
		CustomerName:   protoOrder.GetCustomerName(),
		Address:        protoOrder.GetAddress(),
		BillingCity:    protoOrder.GetBillingCity(),
		MobileNumber:   protoOrder.GetMobileNumber(),
		TotalOrderFees: fees,
		PaymentMethod:  protoOrder.GetPaymentMethod(),
		CreatedAt:      protoOrder.GetCreatedAt().AsTime(),
	}, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, errMissingOrderNumber):
		return "order_number"
	case errors.Is(err, errMissingCreatedAt):
		return "created_at"
	case errors.Is(err, errInvalidFees):
		return "total_order_fees"
	default:
		return "unknown"
	}
}
