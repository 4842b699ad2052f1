//go:build wireinject
// +build wireinject

package app

import (
	"context"

	shopGateway "courierdesk/internal/gateway/grpc/shop"
	orderEvents "courierdesk/internal/gateway/kafka/order_events"
	"courierdesk/internal/gateway/objectstorage"
	"courierdesk/internal/handlers/kafka-consumer/order_changed"
	"courierdesk/internal/handlers/tasks/order_import"
	"courierdesk/internal/pkg/config"
	"courierdesk/internal/pkg/factory/rollup_period"
	"courierdesk/internal/pkg/factory/status_gate"
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

	"courierdesk/pkg/logger"
	"courierdesk/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

var configSet = wire.NewSet(
	provideImportInterval,
	provideImportBatchSize,
	provideOrderChangedTimeout,
	provideReportsCacheTTL,
	provideOrderEventsTopic,
	provideProofBucket,
	provideProofPublicBaseURL,
	provideProofMaxUploadBytes,
	provideProofMaxDimension,
	provideReportsLocation,
	provideDispatchAtomic,
	provideSessionBootstrapRetry,
)

var storageSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideCourierRepository,
	provideOrderRepository,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	s3Client *s3.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		configSet,
		storageSet,

		provideReportCache,
		provideObjectStorage,
		providePublisher,
		provideTokenManager,
		providePeriodFactory,
		provideHub,
		status_gate.New,

		provideServiceCourier,
		provideServiceOrder,
		provideServiceDispatch,
		provideServiceProof,
		provideServiceReport,
		provideServiceSession,
		provideOrderChangedHandler,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Service)),
		wire.Bind(new(ServiceProof), new(*proofService.Service)),
		wire.Bind(new(ServiceReport), new(*reportService.Service)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*orderEvents.Publisher)),
		wire.Bind(new(orderService.StatusGate), new(*status_gate.StatusGateFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(dispatchService.EventPublisher), new(*orderEvents.Publisher)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(proofService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(proofService.Storage), new(*objectstorage.Storage)),
		wire.Bind(new(proofService.EventPublisher), new(*orderEvents.Publisher)),

		wire.Bind(new(reportService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(reportService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(reportService.Cache), new(*report_cache.Cache)),
		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reportService.PeriodFactory), new(*rollup_period.PeriodFactory)),

		wire.Bind(new(sessionService.TokenParser), new(*token.Manager)),
		wire.Bind(new(sessionService.ProfileLoader), new(*courierService.Courier)),

		wire.Bind(new(order_changed.ReportCache), new(*report_cache.Cache)),
		wire.Bind(new(order_changed.Feed), new(*feed.Hub)),
	)
	return &Application{}, nil
}

// InitializeImportWorkerApp для воркера импорта (cmd/worker-order-import)
func InitializeImportWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*ImportWorkerApp, error) {
	wire.Build(
		configSet,
		storageSet,

		providePublisher,
		provideShopServiceClient,
		provideShopGateway,
		provideServiceIntake,
		provideOrderImportTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(ImportWorkerApp), "*"),

		wire.Bind(new(intakeService.ShopGateway), new(*shopGateway.ShopGateway)),
		wire.Bind(new(intakeService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(intakeService.EventPublisher), new(*orderEvents.Publisher)),
		wire.Bind(new(order_import.Service), new(*intakeService.Intake)),
	)
	return nil, nil
}
