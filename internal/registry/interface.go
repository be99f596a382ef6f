// Package registry defines the external ownership ledgers the staking protocol
// drives: the staked collections, the placeholder registry and the reward
// registry. The package also ships an in-memory implementation of them.
package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type Ownership interface {
	// OwnerOf returns ErrTokenNotFound for ids that were never minted (or were burnt).
	OwnerOf(ctx context.Context, id uint64) (common.Address, error)
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
}

type Transferable interface {
	Ownership
	// TransferFrom moves id from from to to on behalf of operator. operator must
	// be from itself or approved for all of from's tokens.
	TransferFrom(ctx context.Context, operator, from, to common.Address, id uint64) error
	IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error)
}

//go:generate mockery --name=AssetSource --output=../../tests/mocks --outpkg=mocks --filename=mock_asset_source.go
type AssetSource interface {
	Transferable
	// Name is the identifier stored in stake records to select the source.
	Name() string
}

//go:generate mockery --name=PlaceholderRegistry --output=../../tests/mocks --outpkg=mocks --filename=mock_placeholder_registry.go
type PlaceholderRegistry interface {
	Transferable
	// Mint issues the next receipt id to to and maps it to originalID.
	Mint(ctx context.Context, minter, to common.Address, originalID uint64) (uint64, error)
	// Burn destroys a receipt. The staking service only burns to roll back a mint.
	Burn(ctx context.Context, minter common.Address, id uint64) error
	IDToMetadataMapping(ctx context.Context, id uint64) (uint64, error)
	TokenURI(ctx context.Context, id uint64) (string, error)
}

//go:generate mockery --name=RewardRegistry --output=../../tests/mocks --outpkg=mocks --filename=mock_reward_registry.go
type RewardRegistry interface {
	Ownership
	// MintKeyedByID mints the reward whose id equals the original asset id.
	MintKeyedByID(ctx context.Context, minter, to common.Address, id uint64) error
	Burn(ctx context.Context, minter common.Address, id uint64) error
	TokenURI(ctx context.Context, id uint64) (string, error)
}
