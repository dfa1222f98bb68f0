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

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/gateway/ethereum"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/ingester"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/repository"
	"github.com/jessevdk/go-flags"
	"github.com/onrik/ethrpc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Network               model.Network `long:"network" env:"ANALYZER_NETWORK" description:"network label for metrics" default:"mainnet"`
	Store                 string        `long:"store" env:"ANALYZER_STORE" description:"persistence backend" choice:"mongo" choice:"clickhouse" default:"mongo"`
	MongoURI              string        `long:"mongo-uri" env:"ANALYZER_MONGO_URI" description:"MongoDB connection string" default:"mongodb://localhost:27017"`
	MongoDatabase         string        `long:"mongo-database" env:"ANALYZER_MONGO_DATABASE" description:"MongoDB database" default:"blockchain"`
	ClickhouseDSN         string        `long:"clickhouse-dsn" env:"ANALYZER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	RPCURL                string        `long:"rpc-url" env:"ANALYZER_RPC_URL" description:"node JSON-RPC URL" default:"http://127.0.0.1:8545"`
	WSURL                 string        `long:"ws-url" env:"ANALYZER_WS_URL" description:"node websocket URL for newHeads" default:"ws://127.0.0.1:8546"`
	RPCTimeout            time.Duration `long:"rpc-timeout" env:"ANALYZER_RPC_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RPCRPS                int           `long:"rpc-rps" env:"ANALYZER_RPC_RPS" description:"RPC requests per second, 0 for unlimited" default:"0"`
	HighValueETH          string        `long:"high-value-eth" env:"ANALYZER_HIGH_VALUE_ETH" description:"ether value above which a transaction raises an alert, empty disables" default:"100"`
	HighGasMultiplier     float64       `long:"high-gas-multiplier" env:"ANALYZER_HIGH_GAS_MULTIPLIER" description:"gas used above average times this counts as high" default:"2"`
	FailedRatio           float64       `long:"failed-ratio" env:"ANALYZER_FAILED_RATIO" description:"failed transaction ratio alert threshold" default:"0.1"`
	ContractCreationRatio float64       `long:"contract-creation-ratio" env:"ANALYZER_CONTRACT_CREATION_RATIO" description:"contract creation ratio alert threshold" default:"0.1"`
	ReceiptWorkers        int           `long:"receipt-workers" env:"ANALYZER_RECEIPT_WORKERS" description:"concurrent receipt fetches per block" default:"1"`
	BlockTimeout          time.Duration `long:"block-timeout" env:"ANALYZER_BLOCK_TIMEOUT" description:"deadline for processing one block, 0 disables" default:"2m"`
	NotificationBuffer    int           `long:"notification-buffer" env:"ANALYZER_NOTIFICATION_BUFFER" description:"buffered block notifications" default:"256"`
	MetricsAddr           string        `long:"metrics-addr" env:"ANALYZER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("analyzer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	pipelineCfg, err := cfg.pipelineConfig()
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := repository.Open(ctx, repository.Options{
		Kind:          repository.Kind(cfg.Store),
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
		ClickHouseDSN: cfg.ClickhouseDSN,
	})
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	rpc := ethereum.NewRPCClient(
		ethrpc.New(cfg.RPCURL, ethrpc.WithHttpClient(&http.Client{Timeout: cfg.RPCTimeout})),
		ethereum.NewLimiter(cfg.RPCRPS),
		metrics.NewRPCClient(cfg.Network),
	)

	pipeline, err := ingester.NewPipeline(
		ethereum.NewGateway(rpc),
		store,
		metrics.NewPipeline(cfg.Network),
		pipelineCfg,
		logger.Named("pipeline"),
	)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}
	subscriber := ethereum.NewSubscriber(cfg.WSURL, logger.Named("subscriber"))

	notifications := make(chan uint64, max(cfg.NotificationBuffer, 0))
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return subscriber.Run(gctx, notifications)
	})
	g.Go(func() error {
		return pipeline.Run(gctx, notifications)
	})

	logger.Info("analyzer started",
		zap.String("network", string(cfg.Network)),
		zap.String("store", cfg.Store),
		zap.String("ws_url", cfg.WSURL),
	)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("analyzer stopped")
	return nil
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
