package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	proto "courierdesk/internal/generated/proto/shop/v1"
	"courierdesk/internal/handlers/grpc/shop_orders"
	"courierdesk/internal/pkg/shopstub"
	"courierdesk/pkg/logger"
	"courierdesk/pkg/logger/zap_adapter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// shop-stub локальная замена магазина для разработки воркера импорта.
func main() {
	var (
		addr     = flag.String("addr", ":50051", "gRPC listen address")
		seed     = flag.Uint64("seed", 1, "gofakeit seed")
		initial  = flag.Int("orders", 200, "orders generated at startup")
		backfill = flag.Duration("backfill", 72*time.Hour, "startup orders are spread over this window")
		every    = flag.Duration("every", 30*time.Second, "interval between new orders, 0 disables")
	)
	flag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter("shop-stub", os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	catalog := shopstub.NewCatalog(*seed)
	now := time.Now().UTC()
	catalog.Generate(*initial, now.Add(-*backfill), now)

	if err := run(ctx, log, catalog, *addr, *every); err != nil {
		log.Error("shop stub failed", logger.NewField("error", err))
	}
}

func run(ctx context.Context, log logger.Logger, catalog *shopstub.Catalog, addr string, every time.Duration) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	server := grpc.NewServer()
	proto.RegisterOrdersServiceServer(server, shop_orders.New(log, catalog))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(proto.OrdersService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if every > 0 {
		go produce(ctx, log, catalog, every)
	}

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		log.Info("shop stub listening",
			logger.NewField("addr", addr),
			logger.NewField("orders", catalog.Len()),
		)
		if err := server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	healthServer.Shutdown()
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		server.Stop()
	}

	log.Info("shop stub stopped")
	return nil
}

// produce время от времени добавляет свежий заказ, чтобы импорт видел новые данные.
func produce(ctx context.Context, log logger.Logger, catalog *shopstub.Catalog, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-ticker.C:
			catalog.Generate(1, tick.UTC(), tick.UTC().Add(time.Millisecond))
			log.Info("order generated", logger.NewField("orders", catalog.Len()))
		}
	}
}
