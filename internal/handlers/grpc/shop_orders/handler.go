package shop_orders

import (
	"context"
	"time"

	proto "courierdesk/internal/generated/proto/shop/v1"
	"courierdesk/internal/pkg/shopstub"
	"courierdesk/pkg/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const maxLimit = 1000

type Handler struct {
	proto.UnimplementedOrdersServiceServer
	log     handlerLogger
	catalog Catalog
}

func New(log logger.Logger, catalog Catalog) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "shop_orders")),
		catalog: catalog,
	}
}

func (h *Handler) GetOrders(ctx context.Context, in *proto.GetOrdersRequest) (*proto.GetOrdersResponse, error) {
	from := time.Time{}
	if in.GetFrom() != nil {
		if err := in.GetFrom().CheckValid(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from: %v", err)
		}
		from = in.GetFrom().AsTime()
	}

	limit := int(in.GetLimit())
	if limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must be non-negative")
	}
	if limit == 0 || limit > maxLimit {
		limit = maxLimit
	}

	orders, err := h.catalog.ListFrom(ctx, from, limit)
	if err != nil {
		h.log.Error("list orders", logger.NewField("error", err))
		return nil, status.FromContextError(err).Err()
	}

	return &proto.GetOrdersResponse{
		Orders: toProtoList(orders),
	}, nil
}

func toProtoList(orders []shopstub.Order) []*proto.Order {
	resp := make([]*proto.Order, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, &proto.Order{
			OrderNumber:    order.OrderNumber,
			CustomerName:   order.CustomerName,
			Address:        order.Address,
			BillingCity:    order.BillingCity,
			MobileNumber:   order.MobileNumber,
			TotalOrderFees: order.TotalOrderFees.StringFixed(2),
			PaymentMethod:  order.PaymentMethod,
			CreatedAt:      timestamppb.New(order.CreatedAt),
		})
	}
	return resp
}
