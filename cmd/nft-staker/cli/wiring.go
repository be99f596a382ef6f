package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/db"
	dbmodel "github.com/babylonlabs-io/nft-staker/internal/db/model"
	"github.com/babylonlabs-io/nft-staker/internal/ledger"
	"github.com/babylonlabs-io/nft-staker/internal/queue"
	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/services"
)

// app is everything start-server and dump-ledger share
type app struct {
	cfg     *config.Config
	store   db.DbInterface
	memory  *registry.Memory
	service *services.Service
}

func newStore(ctx context.Context, cfg *config.Config) (db.DbInterface, func(), error) {
	if cfg.Db == nil {
		log.Ctx(ctx).Warn().Msg("no db configured, changesets are kept in memory only")
		return db.NewDbWithMetrics(db.NewMemory()), func() {}, nil
	}

	if err := dbmodel.Setup(ctx, cfg.Db); err != nil {
		return nil, nil, fmt.Errorf("error while setting up db model: %w", err)
	}

	dbClient, err := db.New(ctx, *cfg.Db)
	if err != nil {
		return nil, nil, fmt.Errorf("error while creating db client: %w", err)
	}
	closer := func() {
		if err := dbClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from db")
		}
	}
	return db.NewDbWithMetrics(dbClient), closer, nil
}

func newPublisher(ctx context.Context, cfg *config.Config) (queue.Publisher, func(), error) {
	if cfg.Queue == nil {
		log.Ctx(ctx).Info().Msg("no queue configured, ledger events are not published")
		return queue.NoopPublisher{}, func() {}, nil
	}

	qm, err := queue.NewQueueManager(cfg.Queue)
	if err != nil {
		return nil, nil, fmt.Errorf("error while creating queue manager: %w", err)
	}
	return qm, qm.Shutdown, nil
}

// newApp wires the registries and service around store and publisher, then
// replays the persisted changesets into the ledger and the in-memory
// registries.
func newApp(ctx context.Context, cfg *config.Config, store db.DbInterface, publisher queue.Publisher) (*app, error) {
	// only the memory backend exists, config validation rejects the rest
	memory := registry.NewMemory(
		cfg.Staking.Custody(),
		cfg.Registry.Collections,
		cfg.Registry.PlaceholderBaseURI,
		cfg.Registry.RewardBaseURI,
	)
	instrumented := make([]registry.AssetSource, 0, len(memory.Collections))
	for _, c := range memory.Collections {
		instrumented = append(instrumented, registry.NewAssetSourceWithMetrics(c))
	}
	sources, err := registry.NewSources(instrumented...)
	if err != nil {
		return nil, err
	}

	service := services.NewService(
		cfg,
		store,
		ledger.New(),
		sources,
		registry.NewPlaceholderWithMetrics(memory.Placeholder),
		registry.NewRewardWithMetrics(memory.Reward),
		publisher,
		services.WithRegistryReplayer(memory),
	)

	if err := service.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("error while bootstrapping ledger: %w", err)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		memory:  memory,
		service: service,
	}, nil
}
