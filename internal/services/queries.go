package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

type StakeRecordView struct {
	Source        string    `json:"source"`
	ID            uint64    `json:"id"`
	PlaceholderID uint64    `json:"placeholder_id"`
	StakedAt      time.Time `json:"staked_at"`
	Eligible      bool      `json:"eligible"`
	EligibleAt    time.Time `json:"eligible_at"`
	// Remaining is the time left until the reward unlocks, in seconds.
	Remaining int64 `json:"remaining_seconds"`
}

type AssetStateView struct {
	Asset  types.AssetRef   `json:"asset"`
	State  types.AssetState `json:"state"`
	Staker *common.Address  `json:"staker,omitempty"`
}

type PlaceholderMetadata struct {
	ID         uint64         `json:"id"`
	OriginalID uint64         `json:"original_id"`
	Owner      common.Address `json:"owner"`
	TokenURI   string         `json:"token_uri"`
}

type RewardMetadata struct {
	ID       uint64         `json:"id"`
	Owner    common.Address `json:"owner"`
	TokenURI string         `json:"token_uri"`
}

// GetStakedTokens returns the assets staker currently has staked. Order is not
// stable across unstakes.
func (s *Service) GetStakedTokens(_ context.Context, staker common.Address) []types.AssetRef {
	return s.ledger.ListStakedAssets(staker)
}

// GetPlaceholderTokenIds is index-aligned with GetStakedTokens.
func (s *Service) GetPlaceholderTokenIds(_ context.Context, staker common.Address) []uint64 {
	return s.ledger.ListPlaceholderReceipts(staker)
}

func (s *Service) GetStakerAddresses(_ context.Context) []common.Address {
	return s.ledger.ListStakerAddresses()
}

func (s *Service) ClaimedNfts(_ context.Context, id uint64) bool {
	return s.ledger.IsClaimed(id)
}

func (s *Service) GetStakeRecords(_ context.Context, staker common.Address) []StakeRecordView {
	now := s.now()
	records := s.ledger.Records(staker)

	views := make([]StakeRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, StakeRecordView{
			Source:        r.Asset.Source,
			ID:            r.Asset.ID,
			PlaceholderID: r.PlaceholderID,
			StakedAt:      r.StakedAt,
			Eligible:      s.clock.IsEligible(r.StakedAt, now),
			EligibleAt:    s.clock.EligibleAt(r.StakedAt),
			Remaining:     int64(s.clock.Remaining(r.StakedAt, now) / time.Second),
		})
	}
	return views
}

func (s *Service) GetAssetState(_ context.Context, asset types.AssetRef) (*AssetStateView, *types.Error) {
	if asset.Source == "" {
		asset.Source = s.cfg.Staking.DefaultSource
	}
	if _, err := s.sources.Get(asset.Source); err != nil {
		return nil, types.NewUnknownAssetError(asset, err)
	}

	view := &AssetStateView{
		Asset: asset,
		State: s.ledger.AssetState(asset),
	}
	if staker, ok := s.ledger.StakerOf(asset); ok {
		view.Staker = &staker
	}
	return view, nil
}

func (s *Service) GetPlaceholderMetadata(ctx context.Context, id uint64) (*PlaceholderMetadata, *types.Error) {
	owner, err := s.placeholder.OwnerOf(ctx, id)
	if err != nil {
		return nil, tokenLookupError(placeholderRegistryName, id, err)
	}
	originalID, err := s.placeholder.IDToMetadataMapping(ctx, id)
	if err != nil {
		return nil, tokenLookupError(placeholderRegistryName, id, err)
	}
	uri, err := s.placeholder.TokenURI(ctx, id)
	if err != nil {
		return nil, tokenLookupError(placeholderRegistryName, id, err)
	}

	return &PlaceholderMetadata{
		ID:         id,
		OriginalID: originalID,
		Owner:      owner,
		TokenURI:   uri,
	}, nil
}

func (s *Service) GetRewardMetadata(ctx context.Context, id uint64) (*RewardMetadata, *types.Error) {
	owner, err := s.reward.OwnerOf(ctx, id)
	if err != nil {
		return nil, tokenLookupError("reward", id, err)
	}
	uri, err := s.reward.TokenURI(ctx, id)
	if err != nil {
		return nil, tokenLookupError("reward", id, err)
	}

	return &RewardMetadata{
		ID:       id,
		Owner:    owner,
		TokenURI: uri,
	}, nil
}

// GetStakerHistory returns every committed changeset caller made, oldest first.
func (s *Service) GetStakerHistory(ctx context.Context, caller common.Address) ([]*types.Changeset, *types.Error) {
	changesets, err := s.db.GetChangesetsByCaller(ctx, caller)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get changesets of %s: %w", caller.Hex(), err),
		)
	}
	return changesets, nil
}

func tokenLookupError(registryName string, id uint64, err error) *types.Error {
	if errors.Is(err, registry.ErrTokenNotFound) {
		return types.NewErrorWithMsg(
			http.StatusNotFound,
			types.NotFound,
			fmt.Sprintf("%s token %d not found", registryName, id),
		)
	}
	return types.NewInternalServiceError(
		fmt.Errorf("failed to read %s token %d: %w", registryName, id, err),
	)
}
