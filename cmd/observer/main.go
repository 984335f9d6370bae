package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/clock"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/feed"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/metrics"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/observer"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/sink"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/snapshot"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const eventBufferSize = 256

type config struct {
	TelemetryURL  string `long:"telemetry-url" env:"OBSERVER_TELEMETRY_URL" description:"telemetry feed WebSocket URL" default:"wss://tc0.res.fm/feed"`
	GenesisHash   string `long:"genesis-hash" env:"OBSERVER_GENESIS_HASH" description:"genesis hash of the chain to follow" default:"0xdbacc01ae41b79388135ccd5d0ebe81eb0905260344256e6f4003bb8e75a91b5"`
	OutputPath    string `long:"output-path" env:"OBSERVER_OUTPUT_PATH" description:"CSV output file for author rows" default:"./data/res-likely-authors.csv"`
	NodesFile     string `long:"nodes-file" env:"OBSERVER_NODES_FILE" description:"node registry snapshot file" default:"./data/telemetry-nodes.json"`
	BlocksFile    string `long:"blocks-file" env:"OBSERVER_BLOCKS_FILE" description:"block ledger snapshot file" default:"./data/telemetry-blocks.json"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"OBSERVER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for mirroring author rows"`
	MetricsAddr   string `long:"metrics-addr" env:"OBSERVER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("telemetry observer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	snapshots, err := snapshot.NewStore(cfg.NodesFile, cfg.BlocksFile)
	if err != nil {
		return fmt.Errorf("init snapshot store: %w", err)
	}

	csvSink, err := sink.NewCSV(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("init csv sink: %w", err)
	}
	defer func() {
		if err := csvSink.Close(); err != nil {
			logger.Error("failed to close csv sink", zap.Error(err))
		}
	}()

	var out observer.OutputSink = csvSink
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		mirror := sink.NewMirror(repo, logger.Named("mirror"))
		mirror.Start(ctx)
		defer mirror.Stop()
		out = sink.Multi(csvSink, mirror)
		logger.Info("mirroring author rows to clickhouse")
	}

	svc, err := observer.NewService(snapshots, out, metrics.NewObserver(), clock.System(), logger.Named("observer"))
	if err != nil {
		return fmt.Errorf("init observer: %w", err)
	}

	client, err := feed.NewClient(cfg.TelemetryURL, cfg.GenesisHash, metrics.NewFeedClient(), logger.Named("feed"))
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	events := make(chan model.Event, eventBufferSize)
	feedErr := make(chan error, 1)
	go func() {
		feedErr <- client.Run(ctx, events)
	}()

	if err := svc.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("observer stopped: %w", err)
	}
	return <-feedErr
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
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
