package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
	_ "time/tzdata"

	application "courierdesk/internal/app"
	"courierdesk/internal/handlers/rest/courier_get"
	"courierdesk/internal/handlers/rest/courier_post"
	"courierdesk/internal/handlers/rest/courier_put"
	"courierdesk/internal/handlers/rest/couriers_get"
	"courierdesk/internal/handlers/rest/healthcheck_head"
	"courierdesk/internal/handlers/rest/me_get"
	"courierdesk/internal/handlers/rest/order_get"
	"courierdesk/internal/handlers/rest/order_preview_post"
	"courierdesk/internal/handlers/rest/order_proofs_post"
	"courierdesk/internal/handlers/rest/order_put"
	"courierdesk/internal/handlers/rest/order_status_post"
	"courierdesk/internal/handlers/rest/orders_archive_post"
	"courierdesk/internal/handlers/rest/orders_assign_post"
	"courierdesk/internal/handlers/rest/orders_delete_post"
	"courierdesk/internal/handlers/rest/orders_events_get"
	"courierdesk/internal/handlers/rest/orders_get"
	"courierdesk/internal/handlers/rest/orders_restore_post"
	"courierdesk/internal/handlers/rest/orders_unassign_post"
	"courierdesk/internal/handlers/rest/ping_get"
	"courierdesk/internal/handlers/rest/reports_export_get"
	"courierdesk/internal/handlers/rest/reports_rollup_get"
	"courierdesk/internal/handlers/rest/reports_summary_get"
	"courierdesk/internal/pkg/config"
	"courierdesk/internal/pkg/dotenv"
	"courierdesk/internal/pkg/kafka"
	metrics_system "courierdesk/internal/pkg/metrics"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/pkg/middlewares/graceful_shutdown"
	"courierdesk/internal/pkg/middlewares/metrics"
	"courierdesk/internal/pkg/middlewares/rate_limiter"
	"courierdesk/internal/pkg/middlewares/timeout"
	"courierdesk/internal/pkg/postgres"
	"courierdesk/internal/pkg/redis"
	"courierdesk/internal/pkg/s3client"
	"courierdesk/pkg/logger"
	"courierdesk/pkg/logger/zap_adapter"
	"courierdesk/pkg/token_bucket"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

const (
	systemMetricsInterval = 5 * time.Second
	rateLimiterIdleTTL    = 10 * time.Minute
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter("service", os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting courierdesk application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	s3Client, err := s3client.NewClient(ctx, log, &cfg.ObjectStorage)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}

	businessApp, err := application.InitializeApplication(
		ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, s3Client, producer, cfg,
	)
	if err != nil {
		_ = producer.Close()
		return fmt.Errorf("business logic: %w", err)
	}
	defer func() {
		if err := businessApp.Publisher.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// каждая реплика читает ленту своей группой, иначе SSE на соседних репликах не получат refetch
	consumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		kafka.InstanceGroupID(cfg.Kafka.ConsumerGroup),
		businessApp.OrderChanged,
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)
		if err := consumer.Start(ongoingCtx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				runLog.Info("Kafka consumer stopped gracefully")
				return
			}
			consumerErr <- err
		}
	}()

	// SSE потоки живут дольше любого таймаута, при Shutdown их закрываем явно
	streamsCtx, closeStreams := context.WithCancel(context.Background())
	defer closeStreams()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, streamsCtx, log, &isShuttingDown, businessApp, pool, redisClient, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		// WriteTimeout не задан: /events/orders держит соединение, для API есть timeout.Middleware
		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	server.RegisterOnShutdown(closeStreams)

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if err := consumer.Close(); err != nil {
		runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	streamsCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	pool *pgxpool.Pool,
	redisClient *goredis.Client,
	cfg *config.Config,
) http.Handler {
	server := cfg.Server
	loc := cfg.Reports.Location

	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	health := healthcheck_head.New(isShuttingDown,
		pool.Ping,
		func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	)
	router.Handle("/healthcheck", health).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	limiter := token_bucket.NewKeyed(server.RateLimiterBurst, float64(server.RateLimiterQPS), rateLimiterIdleTTL)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware(log, app.Sessions))
	api.Use(rate_limiter.Middleware(log, server.RateLimiterQPS, limiter))
	api.Use(timeout.Middleware(server.RequestTimeout))

	api.Handle("/me", me_get.New(log)).Methods("GET")

	api.Handle("/couriers", auth.RequireAdmin(couriers_get.New(log, app.ServiceCourier))).Methods("GET")
	api.Handle("/courier/{id}", auth.RequireAdmin(courier_get.New(log, app.ServiceCourier))).Methods("GET")
	api.Handle("/courier", auth.RequireAdmin(courier_post.New(log, app.ServiceCourier))).Methods("POST")
	api.Handle("/courier", auth.RequireAdmin(courier_put.New(log, app.ServiceCourier))).Methods("PUT")

	api.Handle("/orders", orders_get.New(log, app.ServiceOrder, loc)).Methods("GET")
	api.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/order", auth.RequireAdmin(order_put.New(log, app.ServiceOrder))).Methods("PUT")
	api.Handle("/order/{id}/status", order_status_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/order/{id}/preview", order_preview_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/order/{id}/proofs",
		order_proofs_post.New(log, app.ServiceProof, cfg.ObjectStorage.MaxUploadBytes),
	).Methods("POST")

	api.Handle("/orders/assign", auth.RequireAdmin(orders_assign_post.New(log, app.ServiceDispatch))).Methods("POST")
	api.Handle("/orders/unassign", auth.RequireAdmin(orders_unassign_post.New(log, app.ServiceDispatch))).Methods("POST")
	api.Handle("/orders/archive", auth.RequireAdmin(orders_archive_post.New(log, app.ServiceDispatch))).Methods("POST")
	api.Handle("/orders/restore", auth.RequireAdmin(orders_restore_post.New(log, app.ServiceDispatch))).Methods("POST")
	api.Handle("/orders/delete", auth.RequireAdmin(orders_delete_post.New(log, app.ServiceDispatch))).Methods("POST")

	api.Handle("/reports/summary", auth.RequireAdmin(reports_summary_get.New(log, app.ServiceReport, loc))).Methods("GET")
	api.Handle("/reports/rollup", auth.RequireAdmin(reports_rollup_get.New(log, app.ServiceReport, loc))).Methods("GET")
	api.Handle("/reports/export", auth.RequireAdmin(reports_export_get.New(log, app.ServiceReport, loc))).Methods("GET")

	events := router.PathPrefix("/events").Subrouter()
	events.Use(auth.Middleware(log, app.Sessions))
	events.Use(untilDone(streamsCtx))
	events.Handle("/orders", orders_events_get.New(log, app.Hub, server.SSEHeartbeat)).Methods("GET")

	return router
}

// untilDone обрывает запрос, когда закрывается done.
func untilDone(done context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithCancel(r.Context())
			defer cancel()
			stopAfter := context.AfterFunc(done, cancel)
			defer stopAfter()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
