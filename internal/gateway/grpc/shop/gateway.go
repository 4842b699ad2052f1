package shop

import (
	"context"
	"fmt"
	"time"

	"courierdesk/internal/entities"
	proto "courierdesk/internal/generated/proto/shop/v1"
	retrierconfig "courierdesk/pkg/retrier"
	"courierdesk/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	serviceName = "shop-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type ShopGateway struct {
	client  client
	retrier retrier
}

func New(client client) *ShopGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &ShopGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// GetOrdersFrom заказы магазина, созданные не раньше from. limit 0 - на усмотрение магазина.
func (g *ShopGateway) GetOrdersFrom(ctx context.Context, from time.Time, limit int32) ([]entities.Order, error) {
	req := &proto.GetOrdersRequest{
		From:  timestamppb.New(from),
		Limit: limit,
	}

	var resp *proto.GetOrdersResponse

	err := g.executeWithMetrics(ctx, "GetOrders", func(ctx context.Context) error {
		var err error
		resp, err = g.client.GetOrders(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway shop, get orders: %w", err)
	}

	return toDomainList(resp), nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *ShopGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return codes.OK.String()
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return codes.Unknown.String()
}
