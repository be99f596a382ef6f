package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

type UnstakeResult struct {
	Unstaked []types.StakeRecord `json:"unstaked"`
	// Rewarded lists the original ids a reward was minted for.
	Rewarded []uint64 `json:"rewarded"`
}

// Stake takes every asset of the batch into custody and issues one placeholder
// per asset to caller. Either the whole batch is staked or nothing changes.
func (s *Service) Stake(ctx context.Context, caller common.Address, assets []types.AssetRef) (records []types.StakeRecord, err *types.Error) {
	startTime := time.Now()
	defer func() {
		recordOperation(startTime, types.OperationStake, len(assets), err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBatchSize(assets); err != nil {
		return nil, err
	}
	assets = s.normalize(assets)

	sources, err := s.validateStake(ctx, caller, assets)
	if err != nil {
		log.Ctx(ctx).Debug().
			Str("caller", caller.Hex()).
			Str("error_code", err.ErrorCode.String()).
			Err(err).
			Msg("stake rejected")
		return nil, err
	}

	custody := s.Custody()
	now := s.now()
	j := &journal{}

	records = make([]types.StakeRecord, 0, len(assets))
	for i, asset := range assets {
		src := sources[i]
		id := asset.ID

		if txErr := src.TransferFrom(ctx, custody, caller, custody, id); txErr != nil {
			j.rollback(ctx)
			return nil, types.NewInternalServiceError(
				fmt.Errorf("failed to transfer %s to custody: %w", asset, txErr),
			)
		}
		j.record("return_original", func(ctx context.Context) error {
			return src.TransferFrom(ctx, custody, custody, caller, id)
		})

		placeholderID, mintErr := s.placeholder.Mint(ctx, custody, caller, id)
		if mintErr != nil {
			j.rollback(ctx)
			return nil, types.NewInternalServiceError(
				fmt.Errorf("failed to mint placeholder for %s: %w", asset, mintErr),
			)
		}
		j.record("burn_placeholder", func(ctx context.Context) error {
			return s.placeholder.Burn(ctx, custody, placeholderID)
		})

		records = append(records, types.StakeRecord{
			Owner:         caller,
			Asset:         asset,
			PlaceholderID: placeholderID,
			StakedAt:      now,
		})
	}

	cs := &types.Changeset{
		Operation: types.OperationStake,
		Caller:    caller,
		Timestamp: now,
		Staked:    records,
	}
	if err := s.commit(ctx, cs, j); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("caller", caller.Hex()).
		Int("assets", len(records)).
		Uint64("sequence", cs.Sequence).
		Msg("assets staked")

	return records, nil
}

// Unstake returns every asset of the batch to caller, retires its placeholder
// and mints a reward for assets held at least the reward threshold.
func (s *Service) Unstake(ctx context.Context, caller common.Address, assets []types.AssetRef) (result *UnstakeResult, err *types.Error) {
	startTime := time.Now()
	defer func() {
		recordOperation(startTime, types.OperationUnstake, len(assets), err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBatchSize(assets); err != nil {
		return nil, err
	}
	assets = s.normalize(assets)

	records, sources, err := s.validateUnstake(ctx, caller, assets)
	if err != nil {
		log.Ctx(ctx).Debug().
			Str("caller", caller.Hex()).
			Str("error_code", err.ErrorCode.String()).
			Err(err).
			Msg("unstake rejected")
		return nil, err
	}

	custody := s.Custody()
	now := s.now()
	j := &journal{}

	// ids from different sources can share a reward id, only the first pays
	rewarded := make(map[uint64]struct{})
	result = &UnstakeResult{
		Unstaked: make([]types.StakeRecord, 0, len(records)),
		Rewarded: make([]uint64, 0),
	}

	for i, record := range records {
		src := sources[i]
		id := record.Asset.ID
		placeholderID := record.PlaceholderID

		if txErr := s.placeholder.TransferFrom(ctx, custody, caller, custody, placeholderID); txErr != nil {
			j.rollback(ctx)
			return nil, types.NewInternalServiceError(
				fmt.Errorf("failed to retire placeholder %d: %w", placeholderID, txErr),
			)
		}
		j.record("return_placeholder", func(ctx context.Context) error {
			return s.placeholder.TransferFrom(ctx, custody, custody, caller, placeholderID)
		})

		if txErr := src.TransferFrom(ctx, custody, custody, caller, id); txErr != nil {
			j.rollback(ctx)
			return nil, types.NewInternalServiceError(
				fmt.Errorf("failed to return %s to %s: %w", record.Asset, caller.Hex(), txErr),
			)
		}
		j.record("recustody_original", func(ctx context.Context) error {
			return src.TransferFrom(ctx, custody, caller, custody, id)
		})

		result.Unstaked = append(result.Unstaked, record)

		if !s.clock.IsEligible(record.StakedAt, now) {
			continue
		}
		if _, ok := rewarded[id]; ok || s.ledger.IsClaimed(id) {
			continue
		}

		if mintErr := s.reward.MintKeyedByID(ctx, custody, caller, id); mintErr != nil {
			j.rollback(ctx)
			return nil, types.NewInternalServiceError(
				fmt.Errorf("failed to mint reward %d: %w", id, mintErr),
			)
		}
		j.record("burn_reward", func(ctx context.Context) error {
			return s.reward.Burn(ctx, custody, id)
		})

		rewarded[id] = struct{}{}
		result.Rewarded = append(result.Rewarded, id)
	}

	cs := &types.Changeset{
		Operation: types.OperationUnstake,
		Caller:    caller,
		Timestamp: now,
		Unstaked:  result.Unstaked,
		Rewarded:  result.Rewarded,
	}
	if err := s.commit(ctx, cs, j); err != nil {
		return nil, err
	}

	metrics.IncRewardMinted(len(result.Rewarded))
	log.Ctx(ctx).Info().
		Str("caller", caller.Hex()).
		Int("assets", len(result.Unstaked)).
		Int("rewards", len(result.Rewarded)).
		Uint64("sequence", cs.Sequence).
		Msg("assets unstaked")

	return result, nil
}

// commit persists cs, applies it to the ledger and announces it. The journal is
// rolled back if persisting fails. Must be called with s.mu held.
func (s *Service) commit(ctx context.Context, cs *types.Changeset, j *journal) *types.Error {
	cs.Sequence = s.ledger.Sequence() + 1

	// a changeset the ledger refuses must never reach the store
	if err := s.ledger.Check(cs); err != nil {
		j.rollback(ctx)
		return types.NewInternalServiceError(
			fmt.Errorf("ledger rejected changeset %d: %w", cs.Sequence, err),
		)
	}

	if err := s.db.SaveChangeset(ctx, cs); err != nil {
		j.rollback(ctx)
		return types.NewInternalServiceError(
			fmt.Errorf("failed to save changeset %d: %w", cs.Sequence, err),
		)
	}

	if err := s.ledger.Apply(cs); err != nil {
		// unreachable while mu is held: Check passed on the same state
		log.Ctx(ctx).Error().
			Err(err).
			Uint64("sequence", cs.Sequence).
			Msg("persisted changeset could not be applied to the ledger")
		return types.NewInternalServiceError(
			fmt.Errorf("failed to apply changeset %d: %w", cs.Sequence, err),
		)
	}

	if err := s.publisher.PushLedgerEvent(ctx, cs); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Uint64("sequence", cs.Sequence).
			Msg("failed to publish ledger event")
		metrics.RecordQueueSendError()
	}

	return nil
}

func recordOperation(startTime time.Time, operation types.Operation, batchSize int, err *types.Error) {
	outcome := metrics.Success.String()
	if err != nil {
		outcome = err.ErrorCode.String()
	}
	metrics.RecordStakingOperation(time.Since(startTime), operation.String(), batchSize, outcome)
}
