package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

func TestMetadata(t *testing.T) {
	f := newFixture(t)
	alice := f.newStaker(3)

	records, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 2)})
	require.Nil(t, err)

	placeholder, err := f.service.GetPlaceholderMetadata(f.ctx, records[0].PlaceholderID)
	require.Nil(t, err)
	assert.Equal(t, uint64(2), placeholder.OriginalID)
	assert.Equal(t, alice, placeholder.Owner)
	assert.Equal(t, placeholderBaseURI+"2.json", placeholder.TokenURI)

	_, err = f.service.GetRewardMetadata(f.ctx, 2)
	requireErrorCode(t, err, types.NotFound)

	f.advance(30*day + 10*time.Second)
	_, err = f.service.Unstake(f.ctx, alice, []types.AssetRef{asset(quirkies, 2)})
	require.Nil(t, err)

	reward, err := f.service.GetRewardMetadata(f.ctx, 2)
	require.Nil(t, err)
	assert.Equal(t, alice, reward.Owner)
	assert.Equal(t, rewardBaseURI+"2.json", reward.TokenURI)

	_, err = f.service.GetPlaceholderMetadata(f.ctx, 42)
	requireErrorCode(t, err, types.NotFound)
}

func TestGetStakeRecords(t *testing.T) {
	f := newFixture(t)
	alice := f.newStaker(2)
	stakedAt := f.now

	_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 0)})
	require.Nil(t, err)
	f.advance(10 * day)

	views := f.service.GetStakeRecords(f.ctx, alice)
	require.Len(t, views, 1)
	assert.Equal(t, quirkies, views[0].Source)
	assert.Equal(t, uint64(0), views[0].ID)
	assert.False(t, views[0].Eligible)
	assert.Equal(t, stakedAt.Add(30*day), views[0].EligibleAt)
	assert.Equal(t, int64((20 * day).Seconds()), views[0].Remaining)

	f.advance(25 * day)
	views = f.service.GetStakeRecords(f.ctx, alice)
	require.Len(t, views, 1)
	assert.True(t, views[0].Eligible)
	assert.Zero(t, views[0].Remaining)

	assert.Empty(t, f.service.GetStakeRecords(f.ctx, f.custody))
}

func TestGetAssetState(t *testing.T) {
	f := newFixture(t)
	alice := f.newStaker(2)

	state, err := f.service.GetAssetState(f.ctx, asset(quirkies, 1))
	require.Nil(t, err)
	assert.Equal(t, types.AssetStateUnstaked, state.State)
	assert.Nil(t, state.Staker)

	_, err = f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 1)})
	require.Nil(t, err)

	state, err = f.service.GetAssetState(f.ctx, types.AssetRef{ID: 1})
	require.Nil(t, err)
	assert.Equal(t, types.AssetStateStaked, state.State)
	require.NotNil(t, state.Staker)
	assert.Equal(t, alice, *state.Staker)

	f.advance(40 * day)
	_, err = f.service.Unstake(f.ctx, alice, []types.AssetRef{asset(quirkies, 1)})
	require.Nil(t, err)

	state, err = f.service.GetAssetState(f.ctx, asset(quirkies, 1))
	require.Nil(t, err)
	assert.Equal(t, types.AssetStateClaimed, state.State)

	_, err = f.service.GetAssetState(f.ctx, asset("unknown", 1))
	requireErrorCode(t, err, types.UnknownAsset)
}

func TestGetStakerHistory(t *testing.T) {
	f := newFixture(t)
	alice := f.newStaker(2)
	bob := f.newStaker(2)

	_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 0)})
	require.Nil(t, err)
	_, err = f.service.Stake(f.ctx, bob, []types.AssetRef{asset(quirkies, 2)})
	require.Nil(t, err)
	_, err = f.service.Unstake(f.ctx, alice, []types.AssetRef{asset(quirkies, 0)})
	require.Nil(t, err)

	history, err := f.service.GetStakerHistory(f.ctx, alice)
	require.Nil(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, types.OperationStake, history[0].Operation)
	assert.Equal(t, uint64(1), history[0].Sequence)
	assert.Equal(t, types.OperationUnstake, history[1].Operation)
	assert.Equal(t, uint64(3), history[1].Sequence)
}
