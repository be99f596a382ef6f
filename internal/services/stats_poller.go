package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/db"
	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staker/internal/utils/poller"
)

// StartStatsPoller starts the stats polling service
func (s *Service) StartStatsPoller(ctx context.Context) *poller.Poller {
	statsPoller := poller.NewPoller(
		"stats",
		s.cfg.Poller.StatsPollingInterval,
		metrics.RecordPollerDuration("stats", s.calculateAndUpdateStats),
	)
	go statsPoller.Start(ctx)
	return statsPoller
}

// calculateAndUpdateStats snapshots the ledger counters into metrics and the store
func (s *Service) calculateAndUpdateStats(ctx context.Context) error {
	stats := s.ledger.Stats()
	sequence := s.ledger.Sequence()

	metrics.RecordLedgerStats(stats.Stakers, stats.ActiveStakers, stats.StakedAssets, stats.ClaimedAssets)

	err := s.db.UpsertLedgerStats(ctx, &db.LedgerStats{
		Stakers:       uint64(stats.Stakers),
		ActiveStakers: uint64(stats.ActiveStakers),
		StakedAssets:  uint64(stats.StakedAssets),
		ClaimedAssets: uint64(stats.ClaimedAssets),
		Sequence:      sequence,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert ledger stats: %w", err)
	}

	log.Ctx(ctx).Debug().
		Int("stakers", stats.Stakers).
		Int("staked_assets", stats.StakedAssets).
		Uint64("sequence", sequence).
		Msg("Updated ledger stats")
	return nil
}
