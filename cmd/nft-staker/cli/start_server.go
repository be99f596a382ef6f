package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/nft-staker/internal/api"
	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staker/internal/observability/tracing"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the NFT staking server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	if cfg.Server.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
	}

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, closePublisher, err := newPublisher(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePublisher()

	a, err := newApp(ctx, cfg, store, publisher)
	if err != nil {
		return err
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	statsPoller := a.service.StartStatsPoller(ctx)
	defer statsPoller.Stop()

	server := api.NewServer(&cfg.Server, api.NewRouter(a.service, a.store, a.memory))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	log.Info().
		Str("custody", a.service.Custody().Hex()).
		Strs("collections", cfg.Registry.Collections).
		Msg("NFT staker started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
