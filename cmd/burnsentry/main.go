package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/burnsentry/burnsentry-backend/internal/chain"
	"github.com/burnsentry/burnsentry-backend/internal/metrics"
	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/burnsentry/burnsentry-backend/internal/provenance"
	"github.com/burnsentry/burnsentry-backend/internal/repository/clickhouse"
	"github.com/burnsentry/burnsentry-backend/internal/service"
	"github.com/burnsentry/burnsentry-backend/internal/transport"
	"github.com/burnsentry/burnsentry-backend/pkg/batcher"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr          string        `long:"addr" env:"BURNSENTRY_ADDR" description:"address for the burn check API" default:":8000"`
	MetricsAddr   string        `long:"metrics-addr" env:"BURNSENTRY_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Coin          model.Coin    `long:"coin" env:"BURNSENTRY_COIN" description:"coin name" default:"bch"`
	Network       model.Network `long:"network" env:"BURNSENTRY_NETWORK" description:"network name" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"BURNSENTRY_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"BURNSENTRY_RPC_USER" description:"node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"BURNSENTRY_RPC_PASSWORD" description:"node RPC password"`
	TrustURL      string        `long:"trust-url" env:"BURNSENTRY_TRUST_URL" description:"trust service base URL" required:"true"`
	TrustTimeout  time.Duration `long:"trust-timeout" env:"BURNSENTRY_TRUST_TIMEOUT" description:"trust service request timeout" default:"10s"`
	TrustRPS      int           `long:"trust-rps" env:"BURNSENTRY_TRUST_RPS" description:"trust service request rate limit" default:"50"`
	Workers       int           `long:"workers" env:"BURNSENTRY_WORKERS" description:"parent resolution workers" default:"8"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BURNSENTRY_CLICKHOUSE_DSN" description:"ClickHouse DSN for the verdict audit log, empty disables auditing"`
	AuditBatch    int           `long:"audit-batch" env:"BURNSENTRY_AUDIT_BATCH" description:"audit log flush batch size" default:"100"`
	AuditInterval time.Duration `long:"audit-interval" env:"BURNSENTRY_AUDIT_INTERVAL" description:"audit log flush interval" default:"5s"`
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
		logger.Fatal("burn sentry failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := chain.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))

	hydrator, err := chain.NewHydrator(rpc, cfg.Network)
	if err != nil {
		return fmt.Errorf("init hydrator: %w", err)
	}

	trust, err := provenance.NewClient(cfg.TrustURL, cfg.TrustTimeout, cfg.TrustRPS, metrics.NewTrustClient(cfg.Coin, cfg.Network))
	if err != nil {
		return fmt.Errorf("init trust client: %w", err)
	}

	var (
		store *clickhouse.Repository
		audit service.AuditSink
	)
	if cfg.ClickhouseDSN != "" {
		store, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init audit repository: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				logger.Error("failed to close audit repository", zap.Error(closeErr))
			}
		}()

		auditBatcher := batcher.New(logger, store.InsertVerdicts, cfg.AuditBatch, cfg.AuditInterval, 1)
		auditBatcher.Start(ctx)
		defer auditBatcher.Stop()
		audit = auditBatcher
	} else {
		logger.Info("audit log disabled, no ClickHouse DSN configured")
	}

	resolver := service.NewProvenanceResolver(hydrator, trust, cfg.Workers, logger)
	checker := service.NewBurnChecker(
		cfg.Coin,
		cfg.Network,
		hydrator,
		resolver,
		rpc,
		audit,
		metrics.NewVerdicts(cfg.Coin, cfg.Network),
		logger,
	)

	var verdictStore transport.VerdictStore
	if store != nil {
		verdictStore = store
	}
	handler := transport.NewHandler(checker, verdictStore, cfg.Coin, cfg.Network, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(handler.Routes()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting burn check API",
		zap.String("addr", cfg.Addr),
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
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

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	clientCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(clientCfg, nil)
}
