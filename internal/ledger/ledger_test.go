package ledger_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/ledger"
	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/testutil"
)

func record(owner common.Address, id, placeholder uint64) types.StakeRecord {
	return types.StakeRecord{
		Owner:         owner,
		Asset:         types.AssetRef{Source: "quirkies", ID: id},
		PlaceholderID: placeholder,
		StakedAt:      time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestLedger_RecordStake(t *testing.T) {
	l := ledger.New()
	alice := testutil.RandomAddress()
	bob := testutil.RandomAddress()

	l.RecordStake(record(alice, 3, 0))
	l.RecordStake(record(bob, 4, 1))
	l.RecordStake(record(alice, 5, 2))

	assert.Equal(t, []types.AssetRef{{Source: "quirkies", ID: 3}, {Source: "quirkies", ID: 5}}, l.ListStakedAssets(alice))
	assert.Equal(t, []uint64{0, 2}, l.ListPlaceholderReceipts(alice))
	// staker registry keeps insertion order and has no duplicates
	assert.Equal(t, []common.Address{alice, bob}, l.ListStakerAddresses())

	owner, ok := l.StakerOf(types.AssetRef{Source: "quirkies", ID: 4})
	require.True(t, ok)
	assert.Equal(t, bob, owner)

	stats := l.Stats()
	assert.Equal(t, ledger.Stats{Stakers: 2, ActiveStakers: 2, StakedAssets: 3}, stats)
}

func TestLedger_FindRecordIndex(t *testing.T) {
	l := ledger.New()
	alice := testutil.RandomAddress()
	l.RecordStake(record(alice, 3, 0))

	idx, ok := l.FindRecordIndex(alice, types.AssetRef{Source: "quirkies", ID: 3})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	t.Run("other id", func(t *testing.T) {
		_, ok := l.FindRecordIndex(alice, types.AssetRef{Source: "quirkies", ID: 0})
		assert.False(t, ok)
	})
	t.Run("same id other source", func(t *testing.T) {
		_, ok := l.FindRecordIndex(alice, types.AssetRef{Source: "quirklings", ID: 3})
		assert.False(t, ok)
	})
	t.Run("other staker", func(t *testing.T) {
		_, ok := l.FindRecordIndex(testutil.RandomAddress(), types.AssetRef{Source: "quirkies", ID: 3})
		assert.False(t, ok)
	})
}

func TestLedger_RemoveRecord(t *testing.T) {
	l := ledger.New()
	alice := testutil.RandomAddress()
	for i := uint64(0); i < 4; i++ {
		l.RecordStake(record(alice, 10+i, i))
	}

	removed, err := l.RemoveRecord(alice, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), removed.Asset.ID)

	assets := l.ListStakedAssets(alice)
	placeholders := l.ListPlaceholderReceipts(alice)
	require.Len(t, assets, 3)
	require.Len(t, placeholders, 3)
	assert.ElementsMatch(t, []uint64{0, 2, 3}, placeholders)
	// projections stay aligned after swap removal
	for i, asset := range assets {
		assert.Equal(t, asset.ID-10, placeholders[i])
	}

	_, ok := l.StakerOf(types.AssetRef{Source: "quirkies", ID: 11})
	assert.False(t, ok)

	t.Run("out of range", func(t *testing.T) {
		_, err := l.RemoveRecord(alice, 3)
		require.ErrorIs(t, err, ledger.ErrIndexOutOfRange)
		_, err = l.RemoveRecord(testutil.RandomAddress(), 0)
		require.ErrorIs(t, err, ledger.ErrIndexOutOfRange)
	})
	t.Run("removing everything keeps staker registered", func(t *testing.T) {
		for len(l.Records(alice)) > 0 {
			_, err := l.RemoveRecord(alice, 0)
			require.NoError(t, err)
		}
		assert.Empty(t, l.ListStakedAssets(alice))
		assert.Equal(t, []common.Address{alice}, l.ListStakerAddresses())
		assert.Equal(t, 0, l.Stats().ActiveStakers)
	})
}

func TestLedger_Snapshots(t *testing.T) {
	l := ledger.New()
	alice := testutil.RandomAddress()
	l.RecordStake(record(alice, 1, 0))

	assets := l.ListStakedAssets(alice)
	stakers := l.ListStakerAddresses()
	records := l.Records(alice)
	assets[0].ID = 99
	stakers[0] = common.Address{}
	records[0].PlaceholderID = 99

	assert.Equal(t, uint64(1), l.ListStakedAssets(alice)[0].ID)
	assert.Equal(t, alice, l.ListStakerAddresses()[0])
	assert.Equal(t, uint64(0), l.Records(alice)[0].PlaceholderID)
}

func TestLedger_Claimed(t *testing.T) {
	l := ledger.New()
	asset := types.AssetRef{Source: "quirkies", ID: 2}

	assert.False(t, l.IsClaimed(2))
	assert.Equal(t, types.AssetStateUnstaked, l.AssetState(asset))

	l.MarkClaimed(2)
	l.MarkClaimed(2)
	assert.True(t, l.IsClaimed(2))
	assert.Equal(t, 1, l.Stats().ClaimedAssets)
	assert.Equal(t, types.AssetStateClaimed, l.AssetState(asset))

	l.MarkClaimed(7)
	l.MarkClaimed(0)
	assert.Equal(t, []uint64{0, 2, 7}, l.ClaimedIDs())
}
