package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sourcegraph/conc/pool"

	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

const placeholderRegistryName = "placeholder"

// checkBatchSize rejects empty batches and batches above the configured limit
func (s *Service) checkBatchSize(assets []types.AssetRef) *types.Error {
	limit := s.cfg.Staking.MaxBatchSize
	if len(assets) == 0 || len(assets) > limit {
		return types.NewInvalidBatchSizeError(len(assets), limit)
	}
	return nil
}

// normalize fills in the default source for assets that omit it
func (s *Service) normalize(assets []types.AssetRef) []types.AssetRef {
	out := make([]types.AssetRef, len(assets))
	for i, asset := range assets {
		if asset.Source == "" {
			asset.Source = s.cfg.Staking.DefaultSource
		}
		out[i] = asset
	}
	return out
}

// runChecks evaluates check for every index on a bounded pool and returns the
// first failure in batch order.
func (s *Service) runChecks(n int, check func(i int) *types.Error) *types.Error {
	errs := make([]*types.Error, n)

	p := pool.New().WithMaxGoroutines(s.cfg.Staking.ValidationWorkers)
	for i := 0; i < n; i++ {
		p.Go(func() {
			errs[i] = check(i)
		})
	}
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// validateStake runs every stake precondition without touching the registries.
// It returns the source of each asset in batch order.
func (s *Service) validateStake(ctx context.Context, caller common.Address, assets []types.AssetRef) ([]registry.AssetSource, *types.Error) {
	custody := s.Custody()
	sources := make([]registry.AssetSource, len(assets))

	seen := make(map[types.AssetRef]struct{}, len(assets))
	duplicate := make([]bool, len(assets))
	for i, asset := range assets {
		if _, ok := seen[asset]; ok {
			duplicate[i] = true
		}
		seen[asset] = struct{}{}
	}

	err := s.runChecks(len(assets), func(i int) *types.Error {
		asset := assets[i]

		src, err := s.sources.Get(asset.Source)
		if err != nil {
			return types.NewUnknownAssetError(asset, err)
		}
		sources[i] = src

		// custody owns it once the first occurrence is transferred
		if duplicate[i] {
			return types.NewNotOwnerError(asset)
		}

		owner, err := src.OwnerOf(ctx, asset.ID)
		if errors.Is(err, registry.ErrTokenNotFound) {
			return types.NewUnknownAssetError(asset, err)
		}
		if err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to get owner of %s: %w", asset, err),
			)
		}
		if owner != caller {
			return types.NewNotOwnerError(asset)
		}

		approved, err := src.IsApprovedForAll(ctx, caller, custody)
		if err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to check approval on %s: %w", src.Name(), err),
			)
		}
		if !approved {
			return types.NewNotApprovedError(src.Name(), asset.ID)
		}

		if s.ledger.IsClaimed(asset.ID) {
			return types.NewAlreadyClaimedError(asset)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

// validateUnstake resolves the caller's live records for assets and checks the
// caller still holds each placeholder and lets custody take it back.
func (s *Service) validateUnstake(ctx context.Context, caller common.Address, assets []types.AssetRef) ([]types.StakeRecord, []registry.AssetSource, *types.Error) {
	custody := s.Custody()
	records := make([]types.StakeRecord, len(assets))
	sources := make([]registry.AssetSource, len(assets))
	found := make([]bool, len(assets))

	seen := make(map[types.AssetRef]struct{}, len(assets))
	for i, asset := range assets {
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		records[i], found[i] = s.ledger.FindRecord(caller, asset)
	}

	err := s.runChecks(len(assets), func(i int) *types.Error {
		asset := assets[i]
		if !found[i] {
			return types.NewIndexNotFoundError(asset)
		}

		src, err := s.sources.Get(asset.Source)
		if err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("staked asset %s has no configured source: %w", asset, err),
			)
		}
		sources[i] = src

		placeholderID := records[i].PlaceholderID
		owner, err := s.placeholder.OwnerOf(ctx, placeholderID)
		if errors.Is(err, registry.ErrTokenNotFound) {
			return types.NewNotOwnerError(asset)
		}
		if err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to get owner of placeholder %d: %w", placeholderID, err),
			)
		}
		if owner != caller {
			return types.NewNotOwnerError(asset)
		}

		approved, err := s.placeholder.IsApprovedForAll(ctx, caller, custody)
		if err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to check placeholder approval: %w", err),
			)
		}
		if !approved {
			return types.NewNotApprovedError(placeholderRegistryName, placeholderID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return records, sources, nil
}
