package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/ledger"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/repository/sqlite"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/service/extractor"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/writebuffer"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	clickhouseScheme = "clickhouse://"
	metricsAddrEnv   = "QRL_EXTRACTOR_METRICS_ADDR"
)

type config struct {
	StateDir string `short:"i" long:"state-dir" env:"QRL_EXTRACTOR_STATE_DIR" description:"QRL LevelDB state folder" required:"true"`
	Output   string `short:"o" long:"output" env:"QRL_EXTRACTOR_OUTPUT" description:"SQLite file path or clickhouse:// DSN" required:"true"`
}

type sink interface {
	extractor.Repository
	Close() error
}

func main() {
	cfg := config{}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("qrl extractor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if addr, ok := os.LookupEnv(metricsAddrEnv); ok && addr != "" {
		startMetricsServer(ctx, addr, logger)
	}

	store, err := ledger.OpenLevelDB(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("open state folder: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close state folder", zap.Error(err))
		}
	}()
	source := ledger.NewSource(ledger.NewObservedStore(store, metrics.NewLedgerStore()))

	repo, sinkName, err := openSink(ctx, cfg.Output, logger)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	svc, err := extractor.NewService(
		source,
		repo,
		metrics.NewExtractor(sinkName),
		writebuffer.DefaultFlushThreshold,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func openSink(ctx context.Context, output string, logger *zap.Logger) (sink, string, error) {
	if !strings.HasPrefix(output, clickhouseScheme) {
		repo, err := sqlite.NewRepository(ctx, output, metrics.NewRepository())
		if err != nil {
			return nil, "", err
		}
		return repo, "sqlite", nil
	}

	applied, err := clickhouse.MigrateUp(output)
	if err != nil {
		return nil, "", err
	}
	logger.Info("clickhouse schema ready", zap.Bool("migrated", applied))

	repo, err := clickhouse.NewRepository(ctx, output, metrics.NewRepository())
	if err != nil {
		return nil, "", err
	}
	return repo, "clickhouse", nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
