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

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/config"
	"github.com/fanforge/govledger-adapter/internal/metrics"
	"github.com/fanforge/govledger-adapter/internal/pda"
	"github.com/fanforge/govledger-adapter/internal/rent"
	"github.com/fanforge/govledger-adapter/internal/retry"
	"github.com/fanforge/govledger-adapter/internal/service"
	"github.com/fanforge/govledger-adapter/internal/solanarpc"
	"github.com/fanforge/govledger-adapter/internal/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Parse(os.Args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		// go-flags already printed the parse error.
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger adapter failed", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	signer, err := cfg.LoadKeypair()
	if err != nil {
		return fmt.Errorf("load signer: %w", err)
	}
	programID, err := cfg.ProgramKey()
	if err != nil {
		return fmt.Errorf("parse program id: %w", err)
	}
	memoProgramID, err := cfg.MemoProgramKey()
	if err != nil {
		return fmt.Errorf("parse memo program id: %w", err)
	}

	client := solanarpc.NewClient(cfg.Endpoint(), cfg.RPCRPS, cfg.HTTPTimeout, metrics.NewRPCClient(cfg.Cluster))

	reserver, err := rent.NewCache(client, cfg.CommitmentType(), metrics.NewRentCache(cfg.Cluster), logger)
	if err != nil {
		return fmt.Errorf("init rent cache: %w", err)
	}

	retrier, err := retry.NewExecutor(cfg.RetryAttempts, cfg.RetryBaseDelay, metrics.NewRetry(cfg.Cluster), logger)
	if err != nil {
		return fmt.Errorf("init retry executor: %w", err)
	}

	confirmer, err := service.NewConfirmer(client, cfg.CommitmentType(), cfg.ConfirmTimeout, cfg.PollInterval,
		metrics.NewConfirmer(cfg.Cluster), logger)
	if err != nil {
		return fmt.Errorf("init confirmer: %w", err)
	}
	confirmer.Start(ctx)
	defer confirmer.Stop()

	submitter, err := service.NewSubmitter(client, pda.NewDeriver(programID), reserver, retrier, confirmer,
		service.SubmitterConfig{
			Signer:        signer,
			MemoProgram:   memoProgramID,
			Commitment:    cfg.CommitmentType(),
			SkipPreflight: cfg.SkipPreflight,
		},
		metrics.NewSubmitter(cfg.Cluster), logger)
	if err != nil {
		return fmt.Errorf("init submitter: %w", err)
	}

	recorder, err := service.NewRecorder(submitter, client, cfg.BatchWorkers, metrics.NewBatch(cfg.Cluster), logger)
	if err != nil {
		return fmt.Errorf("init recorder: %w", err)
	}

	monitor, err := service.NewMonitor(client, retrier, cfg.Cluster, cfg.CommitmentType(), cfg.HealthInterval,
		true, metrics.NewHealth(cfg.Cluster), logger)
	if err != nil {
		return fmt.Errorf("init health monitor: %w", err)
	}
	go func() {
		if err := monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("health monitor stopped", zap.Error(err))
		}
	}()

	handler, err := transport.NewHandler(recorder, monitor, metrics.NewHTTPHandler(), logger)
	if err != nil {
		return fmt.Errorf("init http handler: %w", err)
	}

	logger.Info("ledger adapter starting",
		zap.String("cluster", string(cfg.Cluster)),
		zap.String("endpoint", cfg.Endpoint()),
		zap.String("signer", signer.PublicKey().String()),
	)
	return serveAPI(ctx, cfg.ListenAddr, handler.Router(), logger)
}

func serveAPI(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// A recording request spans the full retry budget of confirmation
		// waits, so the write timeout must outlive it.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
