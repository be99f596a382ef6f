package registry

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
)

type sourceWithMetrics struct {
	src AssetSource
}

func NewAssetSourceWithMetrics(src AssetSource) AssetSource {
	return &sourceWithMetrics{src: src}
}

func (s *sourceWithMetrics) Name() string {
	return s.src.Name()
}

func (s *sourceWithMetrics) OwnerOf(ctx context.Context, id uint64) (common.Address, error) {
	return runWithMetrics(s.src.Name(), "OwnerOf", func() (common.Address, error) {
		return s.src.OwnerOf(ctx, id)
	})
}

func (s *sourceWithMetrics) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return runWithMetrics(s.src.Name(), "BalanceOf", func() (uint64, error) {
		return s.src.BalanceOf(ctx, owner)
	})
}

func (s *sourceWithMetrics) TransferFrom(ctx context.Context, operator, from, to common.Address, id uint64) error {
	_, err := runWithMetrics(s.src.Name(), "TransferFrom", func() (struct{}, error) {
		return struct{}{}, s.src.TransferFrom(ctx, operator, from, to, id)
	})
	return err
}

func (s *sourceWithMetrics) IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error) {
	return runWithMetrics(s.src.Name(), "IsApprovedForAll", func() (bool, error) {
		return s.src.IsApprovedForAll(ctx, owner, operator)
	})
}

const (
	placeholderLabel = "placeholder"
	rewardLabel      = "reward"
)

type placeholderWithMetrics struct {
	p PlaceholderRegistry
}

func NewPlaceholderWithMetrics(p PlaceholderRegistry) PlaceholderRegistry {
	return &placeholderWithMetrics{p: p}
}

func (w *placeholderWithMetrics) OwnerOf(ctx context.Context, id uint64) (common.Address, error) {
	return runWithMetrics(placeholderLabel, "OwnerOf", func() (common.Address, error) {
		return w.p.OwnerOf(ctx, id)
	})
}

func (w *placeholderWithMetrics) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return runWithMetrics(placeholderLabel, "BalanceOf", func() (uint64, error) {
		return w.p.BalanceOf(ctx, owner)
	})
}

func (w *placeholderWithMetrics) TransferFrom(ctx context.Context, operator, from, to common.Address, id uint64) error {
	_, err := runWithMetrics(placeholderLabel, "TransferFrom", func() (struct{}, error) {
		return struct{}{}, w.p.TransferFrom(ctx, operator, from, to, id)
	})
	return err
}

func (w *placeholderWithMetrics) IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error) {
	return runWithMetrics(placeholderLabel, "IsApprovedForAll", func() (bool, error) {
		return w.p.IsApprovedForAll(ctx, owner, operator)
	})
}

func (w *placeholderWithMetrics) Mint(ctx context.Context, minter, to common.Address, originalID uint64) (uint64, error) {
	return runWithMetrics(placeholderLabel, "Mint", func() (uint64, error) {
		return w.p.Mint(ctx, minter, to, originalID)
	})
}

func (w *placeholderWithMetrics) Burn(ctx context.Context, minter common.Address, id uint64) error {
	_, err := runWithMetrics(placeholderLabel, "Burn", func() (struct{}, error) {
		return struct{}{}, w.p.Burn(ctx, minter, id)
	})
	return err
}

func (w *placeholderWithMetrics) IDToMetadataMapping(ctx context.Context, id uint64) (uint64, error) {
	return runWithMetrics(placeholderLabel, "IDToMetadataMapping", func() (uint64, error) {
		return w.p.IDToMetadataMapping(ctx, id)
	})
}

func (w *placeholderWithMetrics) TokenURI(ctx context.Context, id uint64) (string, error) {
	return runWithMetrics(placeholderLabel, "TokenURI", func() (string, error) {
		return w.p.TokenURI(ctx, id)
	})
}

type rewardWithMetrics struct {
	r RewardRegistry
}

func NewRewardWithMetrics(r RewardRegistry) RewardRegistry {
	return &rewardWithMetrics{r: r}
}

func (w *rewardWithMetrics) OwnerOf(ctx context.Context, id uint64) (common.Address, error) {
	return runWithMetrics(rewardLabel, "OwnerOf", func() (common.Address, error) {
		return w.r.OwnerOf(ctx, id)
	})
}

func (w *rewardWithMetrics) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return runWithMetrics(rewardLabel, "BalanceOf", func() (uint64, error) {
		return w.r.BalanceOf(ctx, owner)
	})
}

func (w *rewardWithMetrics) MintKeyedByID(ctx context.Context, minter, to common.Address, id uint64) error {
	_, err := runWithMetrics(rewardLabel, "MintKeyedByID", func() (struct{}, error) {
		return struct{}{}, w.r.MintKeyedByID(ctx, minter, to, id)
	})
	return err
}

func (w *rewardWithMetrics) Burn(ctx context.Context, minter common.Address, id uint64) error {
	_, err := runWithMetrics(rewardLabel, "Burn", func() (struct{}, error) {
		return struct{}{}, w.r.Burn(ctx, minter, id)
	})
	return err
}

func (w *rewardWithMetrics) TokenURI(ctx context.Context, id uint64) (string, error) {
	return runWithMetrics(rewardLabel, "TokenURI", func() (string, error) {
		return w.r.TokenURI(ctx, id)
	})
}

func runWithMetrics[T any](registry, method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordRegistryLatency(duration, registry, method, err != nil)
	return v, err
}
