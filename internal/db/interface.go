package db

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// SaveChangeset stores a committed changeset. A changeset with an already
	// used sequence fails with DuplicateKeyError.
	SaveChangeset(ctx context.Context, cs *types.Changeset) error
	// GetChangesets returns changesets with sequence > afterSequence in
	// ascending order, at most limit of them (0 means no limit).
	GetChangesets(ctx context.Context, afterSequence uint64, limit int64) ([]*types.Changeset, error)
	GetChangesetsByCaller(ctx context.Context, caller common.Address) ([]*types.Changeset, error)
	GetLastSequence(ctx context.Context) (uint64, error)
	UpsertLedgerStats(ctx context.Context, stats *LedgerStats) error
}

type LedgerStats struct {
	Stakers       uint64
	ActiveStakers uint64
	StakedAssets  uint64
	ClaimedAssets uint64
	Sequence      uint64
}
