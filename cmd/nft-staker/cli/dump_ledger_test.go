package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/db"
	"github.com/babylonlabs-io/nft-staker/internal/queue"
	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/testutil"
)

func TestDumpLedger(t *testing.T) {
	ctx := context.Background()
	custody := testutil.RandomAddress()
	alice := testutil.RandomAddress()
	bob := testutil.RandomAddress()
	cfg := &config.Config{
		Staking:  config.StakingConfig{CustodyAddress: custody.Hex()},
		Registry: config.RegistryConfig{Collections: []string{"quirkies"}},
	}

	stakedAt := time.Unix(1_700_000_000, 0).UTC()
	stake := func(owner common.Address, id, placeholder uint64) types.StakeRecord {
		return types.StakeRecord{
			Owner:         owner,
			Asset:         types.AssetRef{Source: "quirkies", ID: id},
			PlaceholderID: placeholder,
			StakedAt:      stakedAt,
		}
	}

	store := db.NewMemory()
	for _, cs := range []*types.Changeset{
		{Sequence: 1, Operation: types.OperationStake, Caller: alice, Timestamp: stakedAt,
			Staked: []types.StakeRecord{stake(alice, 1, 0), stake(alice, 2, 1)}},
		{Sequence: 2, Operation: types.OperationStake, Caller: bob, Timestamp: stakedAt,
			Staked: []types.StakeRecord{stake(bob, 3, 2)}},
		{Sequence: 3, Operation: types.OperationUnstake, Caller: alice, Timestamp: stakedAt.Add(31 * 24 * time.Hour),
			Unstaked: []types.StakeRecord{stake(alice, 1, 0)}, Rewarded: []uint64{1}},
	} {
		require.NoError(t, store.SaveChangeset(ctx, cs))
	}

	a, err := newApp(ctx, cfg, store, queue.NoopPublisher{})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), a.service.Ledger().Sequence())

	// the registries are rebuilt alongside the ledger
	quirkies, ok := a.memory.Collection("quirkies")
	require.True(t, ok)
	owner, err := quirkies.OwnerOf(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, custody, owner)
	owner, err = a.memory.Reward.OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	t.Run("all stakers", func(t *testing.T) {
		var out bytes.Buffer
		writeLedgerDump(&out, a.service.Ledger(), nil)

		dump := out.String()
		assert.Contains(t, dump, "Sequence: (uint64) 3")
		assert.Contains(t, dump, alice.Hex())
		assert.Contains(t, dump, bob.Hex())
		assert.Contains(t, dump, "ClaimedAssets: (int) 1")
	})

	t.Run("single staker", func(t *testing.T) {
		var out bytes.Buffer
		writeLedgerDump(&out, a.service.Ledger(), []common.Address{bob})

		dump := out.String()
		assert.Contains(t, dump, bob.Hex())
		assert.NotContains(t, dump, alice.Hex())
	})
}
