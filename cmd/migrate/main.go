package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"courierdesk/internal/pkg/config"
	"courierdesk/internal/pkg/dotenv"
	"courierdesk/internal/pkg/postgres"
	"courierdesk/migrations"
	"courierdesk/pkg/logger"
	"courierdesk/pkg/logger/zap_adapter"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// migrate up|down|status|version|redo|reset
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter("migrate", os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	log := zapLogger.With(logger.NewField("cmd", "migrate"))

	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			log.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, &cfg.Database, command, flag.Args()[min(1, flag.NArg()):]); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		stop()
		os.Exit(1) //nolint:gocritic // stop вызван явно, zap буферы пишутся синхронно
	}

	log.Info("migration finished", logger.NewField("command", command))
}

func run(ctx context.Context, cfg *config.Database, command string, args []string) error {
	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.RunContext(ctx, command, db, ".", args...)
}
