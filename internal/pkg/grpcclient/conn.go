package grpcclient

import (
	"context"
	"fmt"
	"time"

	proto "courierdesk/internal/generated/proto/shop/v1"
	"courierdesk/internal/pkg/config"
	"courierdesk/pkg/logger"
	"courierdesk/pkg/retrier"
	"courierdesk/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
	probeTimeout     = 5 * time.Second
)

var probeRetry = retrier.Config{
	InitialInterval: time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

// NewConnClient канал к магазину. Возвращается только после успешной проверки доступности.
func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.ShopService) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create gRPC client: %w", err)
	}

	probeLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	if err := waitReady(ctx, probeLog, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}
	return conn, nil
}

func waitReady(ctx context.Context, log logger.Logger, conn *grpc.ClientConn) error {
	cfg := probeRetry
	cfg.Notify = func(err error, wait time.Duration) {
		log.Warn("shop service is not ready yet",
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		)
	}

	err := backoff_adapter.New(cfg).ExecuteWithContext(ctx, func(ctx context.Context) error {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		return probe(probeCtx, conn)
	})
	if err != nil {
		log.Error("shop service unreachable", logger.NewField("error", err))
		return err
	}

	log.Info("gRPC connection established")
	return nil
}

// probe предпочитает grpc.health.v1; если магазин его не реализует, делает пустой GetOrders.
func probe(ctx context.Context, conn *grpc.ClientConn) error {
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
		Service: proto.OrdersService_ServiceDesc.ServiceName,
	})
	switch {
	case err == nil:
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("health status %s", resp.GetStatus())
		}
		return nil
	case status.Code(err) != codes.Unimplemented:
		return err
	}

	// from в будущем: ответ всегда пустой, проверяется только канал
	_, err = proto.NewOrdersServiceClient(conn).GetOrders(ctx, &proto.GetOrdersRequest{
		From:  timestamppb.New(time.Now().Add(time.Hour)),
		Limit: 1,
	})
	return err
}
