package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSSEHeartbeat      = 15 * time.Second
	defaultImportBatchSize   = 500
	defaultMaxUploadBytes    = 10 << 20
	defaultMaxImageDimension = 2048
	defaultReportsCacheTTL   = 5 * time.Minute
	defaultReportsTimezone   = "Africa/Cairo"
)

type (
	Tasks struct {
		OrdersImportInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill per second
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
		SSEHeartbeat     time.Duration
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	ShopService struct {
		GRPCHost        string
		ImportBatchSize int32
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderChanged OrderChanged
	}

	OrderChanged struct {
		ProcessTimeout time.Duration
	}

	Redis struct {
		Addr            string
		Password        string
		DB              int
		ReportsCacheTTL time.Duration
	}

	ObjectStorage struct {
		Endpoint          string
		Region            string
		Bucket            string
		AccessKeyID       string
		SecretAccessKey   string
		PublicBaseURL     string
		UsePathStyle      bool
		MaxUploadBytes    int64
		MaxImageDimension int
	}

	Auth struct {
		JWTSecret string
	}

	Dispatch struct {
		BatchAtomic bool
	}

	Reports struct {
		Timezone string
		Location *time.Location
	}

	Config struct {
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		ShopService   ShopService
		Kafka         Kafka
		Redis         Redis
		ObjectStorage ObjectStorage
		Auth          Auth
		Dispatch      Dispatch
		Reports       Reports
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	importInterval, err := osGetEnvDuration("BACKGROUND_ORDERS_IMPORT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sseHeartbeat, err := osGetEnvDuration("SSE_HEARTBEAT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	importBatchSize, err := osGetInt("SHOP_SERVICE_IMPORT_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reportsCacheTTL, err := osGetEnvDuration("REPORTS_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	usePathStyle, err := osGetBool("S3_USE_PATH_STYLE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxUploadBytes, err := osGetInt("PROOF_MAX_UPLOAD_BYTES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxImageDimension, err := osGetInt("PROOF_MAX_IMAGE_DIMENSION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	batchAtomic, err := osGetBool("DISPATCH_BATCH_ATOMIC")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timezone := osGetString("REPORTS_TIMEZONE", defaultReportsTimezone)
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading config: invalid REPORTS_TIMEZONE=%q: %w", timezone, err)
	}

	return &Config{
		Tasks: Tasks{
			OrdersImportInterval: importInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			SSEHeartbeat:     orDefault(sseHeartbeat, defaultSSEHeartbeat),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		ShopService: ShopService{
			GRPCHost:        os.Getenv("SHOP_SERVICE_GRPC_HOST"),
			ImportBatchSize: int32(orDefault(importBatchSize, defaultImportBatchSize)),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderChanged: OrderChanged{
					ProcessTimeout: orderChangedTimeout,
				},
			},
		},
		Redis: Redis{
			Addr:            os.Getenv("REDIS_ADDR"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			ReportsCacheTTL: orDefault(reportsCacheTTL, defaultReportsCacheTTL),
		},
		ObjectStorage: ObjectStorage{
			Endpoint:          os.Getenv("S3_ENDPOINT"),
			Region:            os.Getenv("S3_REGION"),
			Bucket:            os.Getenv("S3_BUCKET"),
			AccessKeyID:       os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey:   os.Getenv("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL:     strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
			UsePathStyle:      usePathStyle,
			MaxUploadBytes:    int64(orDefault(maxUploadBytes, defaultMaxUploadBytes)),
			MaxImageDimension: orDefault(maxImageDimension, defaultMaxImageDimension),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		},
		Dispatch: Dispatch{
			BatchAtomic: batchAtomic,
		},
		Reports: Reports{
			Timezone: timezone,
			Location: location,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.OrdersImportInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDERS_IMPORT_INTERVAL is required")
	}

	if cfg.ShopService.GRPCHost == "" {
		return errors.New("SHOP_SERVICE_GRPC_HOST is required")
	}
	if cfg.ShopService.ImportBatchSize < 0 {
		return errors.New("SHOP_SERVICE_IMPORT_BATCH_SIZE must not be negative")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.ObjectStorage.Region == "" {
		return errors.New("S3_REGION is required")
	}
	if cfg.ObjectStorage.Bucket == "" {
		return errors.New("S3_BUCKET is required")
	}
	if cfg.ObjectStorage.PublicBaseURL == "" {
		return errors.New("S3_PUBLIC_BASE_URL is required")
	}
	if (cfg.ObjectStorage.AccessKeyID == "") != (cfg.ObjectStorage.SecretAccessKey == "") {
		return errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set together")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	return nil
}

func orDefault[T comparable](val, def T) T {
	var zero T
	if val == zero {
		return def
	}
	return val
}

func osGetString(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
