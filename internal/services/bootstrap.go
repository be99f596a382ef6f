package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const bootstrapBatchSize = 500

// Bootstrap replays every persisted changeset the ledger has not applied yet,
// and into the registry replayer if one is set. It must run before the service
// accepts stake or unstake calls.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var applied int
	for {
		changesets, err := s.db.GetChangesets(ctx, s.ledger.Sequence(), bootstrapBatchSize)
		if err != nil {
			return fmt.Errorf("failed to load changesets after %d: %w", s.ledger.Sequence(), err)
		}
		if len(changesets) == 0 {
			break
		}

		for _, cs := range changesets {
			if err := s.ledger.Apply(cs); err != nil {
				return fmt.Errorf("failed to replay changeset %d: %w", cs.Sequence, err)
			}
			if s.replayer != nil {
				if err := s.replayer.Replay(ctx, cs); err != nil {
					return fmt.Errorf("failed to replay changeset %d into registries: %w", cs.Sequence, err)
				}
			}
			applied++
		}
	}

	stats := s.ledger.Stats()
	log.Ctx(ctx).Info().
		Int("changesets", applied).
		Uint64("sequence", s.ledger.Sequence()).
		Int("stakers", stats.Stakers).
		Int("staked_assets", stats.StakedAssets).
		Int("claimed_assets", stats.ClaimedAssets).
		Msg("ledger bootstrapped")

	return nil
}
