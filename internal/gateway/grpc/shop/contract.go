//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_test
package shop

import (
	"context"

	proto "courierdesk/internal/generated/proto/shop/v1"

	"google.golang.org/grpc"
)

type client interface {
	GetOrders(ctx context.Context, in *proto.GetOrdersRequest, opts ...grpc.CallOption) (*proto.GetOrdersResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
