package app

import (
	"context"
	"time"

	shopGateway "courierdesk/internal/gateway/grpc/shop"
	orderEvents "courierdesk/internal/gateway/kafka/order_events"
	"courierdesk/internal/gateway/objectstorage"
	proto "courierdesk/internal/generated/proto/shop/v1"
	"courierdesk/internal/handlers/kafka-consumer/order_changed"
	"courierdesk/internal/handlers/rest/courier_get"
	"courierdesk/internal/handlers/rest/courier_post"
	"courierdesk/internal/handlers/rest/courier_put"
	"courierdesk/internal/handlers/rest/couriers_get"
	"courierdesk/internal/handlers/rest/order_get"
	"courierdesk/internal/handlers/rest/order_preview_post"
	"courierdesk/internal/handlers/rest/order_proofs_post"
	"courierdesk/internal/handlers/rest/order_put"
	"courierdesk/internal/handlers/rest/order_status_post"
	"courierdesk/internal/handlers/rest/orders_archive_post"
	"courierdesk/internal/handlers/rest/orders_assign_post"
	"courierdesk/internal/handlers/rest/orders_delete_post"
	"courierdesk/internal/handlers/rest/orders_get"
	"courierdesk/internal/handlers/rest/orders_restore_post"
	"courierdesk/internal/handlers/rest/orders_unassign_post"
	"courierdesk/internal/handlers/rest/reports_export_get"
	"courierdesk/internal/handlers/rest/reports_rollup_get"
	"courierdesk/internal/handlers/rest/reports_summary_get"
	"courierdesk/internal/handlers/tasks/order_import"
	"courierdesk/internal/pkg/config"
	"courierdesk/internal/pkg/factory/rollup_period"
	"courierdesk/internal/pkg/token"
	courierRepo "courierdesk/internal/repository/courier"
	orderRepo "courierdesk/internal/repository/order"
	"courierdesk/internal/repository/report_cache"
	courierService "courierdesk/internal/service/courier"
	dispatchService "courierdesk/internal/service/dispatch"
	"courierdesk/internal/service/feed"
	intakeService "courierdesk/internal/service/intake"
	orderService "courierdesk/internal/service/order"
	proofService "courierdesk/internal/service/proof"
	reportService "courierdesk/internal/service/report"
	sessionService "courierdesk/internal/service/session"

	"courierdesk/pkg/background"
	"courierdesk/pkg/logger"
	"courierdesk/pkg/querier"
	"courierdesk/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

type (
	ImportInterval        time.Duration
	OrderChangedTimeout   time.Duration
	ReportsCacheTTL       time.Duration
	ImportBatchSize       int32
	OrderEventsTopic      string
	ProofBucket           string
	ProofPublicBaseURL    string
	ReportsLocation       *time.Location
	DispatchAtomic        bool
	ProofMaxUploadBytes   int64
	ProofMaxDimension     int
	SessionBootstrapRetry sessionService.Options
)

// Application зависимости HTTP сервиса (cmd/service).
type Application struct {
	ServiceCourier  ServiceCourier
	ServiceOrder    ServiceOrder
	ServiceDispatch ServiceDispatch
	ServiceProof    ServiceProof
	ServiceReport   ServiceReport
	Sessions        *sessionService.Service
	Hub             *feed.Hub
	OrderChanged    *order_changed.Handler
	Publisher       *orderEvents.Publisher
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_put.Service
	order_status_post.Service
	order_preview_post.Service
}

type ServiceDispatch interface {
	orders_assign_post.Service
	orders_unassign_post.Service
	orders_archive_post.Service
	orders_restore_post.Service
	orders_delete_post.Service
}

type ServiceProof interface {
	order_proofs_post.Service
}

type ServiceReport interface {
	reports_summary_get.Service
	reports_rollup_get.Service
	reports_export_get.Service
}

// ImportWorkerApp зависимости воркера импорта (cmd/worker-order-import).
type ImportWorkerApp struct {
	BackgroundWorkers *background.Worker
	Publisher         *orderEvents.Publisher
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideReportCache(client *goredis.Client, ttl ReportsCacheTTL) *report_cache.Cache {
	return report_cache.New(client, time.Duration(ttl))
}

func provideObjectStorage(client *s3.Client, bucket ProofBucket, publicBaseURL ProofPublicBaseURL) *objectstorage.Storage {
	return objectstorage.New(client, string(bucket), string(publicBaseURL))
}

func providePublisher(producer sarama.SyncProducer, topic OrderEventsTopic, log logger.Logger) *orderEvents.Publisher {
	return orderEvents.New(producer, string(topic), log)
}

func provideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewManager(cfg.Auth.JWTSecret)
}

func providePeriodFactory(loc ReportsLocation) *rollup_period.PeriodFactory {
	return rollup_period.New(loc)
}

func provideHub() *feed.Hub {
	return feed.NewHub()
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	statusGate orderService.StatusGate,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, publisher, statusGate, txManager)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	courier dispatchService.CourierService,
	publisher dispatchService.EventPublisher,
	txManager dispatchService.TxManager,
	atomic DispatchAtomic,
) *dispatchService.Service {
	return dispatchService.New(repository, courier, publisher, txManager, dispatchService.Options{
		Atomic: bool(atomic),
	})
}

func provideServiceProof(
	repository proofService.Repository,
	storage proofService.Storage,
	publisher proofService.EventPublisher,
	log logger.Logger,
	maxUploadBytes ProofMaxUploadBytes,
	maxDimension ProofMaxDimension,
) *proofService.Service {
	return proofService.New(repository, storage, publisher, log, proofService.Options{
		MaxUploadBytes: int64(maxUploadBytes),
		MaxDimension:   int(maxDimension),
	})
}

func provideServiceReport(
	repository reportService.Repository,
	courierRepository reportService.CourierRepository,
	cache reportService.Cache,
	txManager reportService.TxManager,
	periods reportService.PeriodFactory,
	log logger.Logger,
) *reportService.Service {
	return reportService.New(repository, courierRepository, cache, txManager, periods, log)
}

func provideServiceSession(
	parser sessionService.TokenParser,
	profiles sessionService.ProfileLoader,
	log logger.Logger,
	opts SessionBootstrapRetry,
) *sessionService.Service {
	return sessionService.New(parser, profiles, log, sessionService.Options(opts))
}

func provideOrderChangedHandler(
	log logger.Logger,
	cache order_changed.ReportCache,
	hub order_changed.Feed,
	timeout OrderChangedTimeout,
) *order_changed.Handler {
	return order_changed.New(log, cache, hub, time.Duration(timeout))
}

func provideShopServiceClient(conn *grpc.ClientConn) proto.OrdersServiceClient {
	return proto.NewOrdersServiceClient(conn)
}

func provideShopGateway(client proto.OrdersServiceClient) *shopGateway.ShopGateway {
	return shopGateway.New(client)
}

func provideServiceIntake(
	gateway intakeService.ShopGateway,
	repository intakeService.Repository,
	publisher intakeService.EventPublisher,
	batchSize ImportBatchSize,
) (*intakeService.Intake, error) {
	return intakeService.New(gateway, repository, publisher, int32(batchSize))
}

func provideOrderImportTask(
	ctx context.Context,
	log logger.Logger,
	service order_import.Service,
	interval ImportInterval,
) (*order_import.OrderImport, error) {
	return order_import.NewOrderImport(ctx, log, service, time.Duration(interval))
}

func provideTaskList(orderImportTask *order_import.OrderImport) []background.Task {
	return []background.Task{
		orderImportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideImportInterval(cfg *config.Config) ImportInterval {
	return ImportInterval(cfg.Tasks.OrdersImportInterval)
}

func provideImportBatchSize(cfg *config.Config) ImportBatchSize {
	return ImportBatchSize(cfg.ShopService.ImportBatchSize)
}

func provideOrderChangedTimeout(cfg *config.Config) OrderChangedTimeout {
	return OrderChangedTimeout(cfg.Kafka.Handlers.OrderChanged.ProcessTimeout)
}

func provideReportsCacheTTL(cfg *config.Config) ReportsCacheTTL {
	return ReportsCacheTTL(cfg.Redis.ReportsCacheTTL)
}

func provideOrderEventsTopic(cfg *config.Config) OrderEventsTopic {
	return OrderEventsTopic(cfg.Kafka.Topic)
}

func provideProofBucket(cfg *config.Config) ProofBucket {
	return ProofBucket(cfg.ObjectStorage.Bucket)
}

func provideProofPublicBaseURL(cfg *config.Config) ProofPublicBaseURL {
	return ProofPublicBaseURL(cfg.ObjectStorage.PublicBaseURL)
}

func provideProofMaxUploadBytes(cfg *config.Config) ProofMaxUploadBytes {
	return ProofMaxUploadBytes(cfg.ObjectStorage.MaxUploadBytes)
}

func provideProofMaxDimension(cfg *config.Config) ProofMaxDimension {
	return ProofMaxDimension(cfg.ObjectStorage.MaxImageDimension)
}

func provideReportsLocation(cfg *config.Config) ReportsLocation {
	return cfg.Reports.Location
}

func provideDispatchAtomic(cfg *config.Config) DispatchAtomic {
	return DispatchAtomic(cfg.Dispatch.BatchAtomic)
}

// provideSessionBootstrapRetry таймауты и повторы берутся по умолчанию из пакета session.
func provideSessionBootstrapRetry() SessionBootstrapRetry {
	return SessionBootstrapRetry{}
}
