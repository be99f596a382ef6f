package registry_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/testutil"
)

func TestCollection(t *testing.T) {
	ctx := t.Context()
	quirkies := registry.NewCollection("quirkies")
	alice := testutil.RandomAddress()
	bob := testutil.RandomAddress()
	operator := testutil.RandomAddress()

	_, err := quirkies.OwnerOf(ctx, 0)
	require.ErrorIs(t, err, registry.ErrTokenNotFound)

	ids, err := quirkies.Mint(ctx, bob, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, ids)
	ids, err = quirkies.Mint(ctx, alice, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, ids)

	balance, err := quirkies.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), balance)

	t.Run("operator needs approval", func(t *testing.T) {
		err := quirkies.TransferFrom(ctx, operator, alice, operator, 3)
		require.ErrorIs(t, err, registry.ErrNotOwnerOrApproved)

		require.NoError(t, quirkies.SetApprovalForAll(ctx, alice, operator, true))
		approved, err := quirkies.IsApprovedForAll(ctx, alice, operator)
		require.NoError(t, err)
		assert.True(t, approved)

		require.NoError(t, quirkies.TransferFrom(ctx, operator, alice, operator, 3))
		owner, err := quirkies.OwnerOf(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, operator, owner)

		balance, err := quirkies.BalanceOf(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), balance)
	})
	t.Run("approval does not cover other owners", func(t *testing.T) {
		err := quirkies.TransferFrom(ctx, operator, bob, operator, 0)
		require.ErrorIs(t, err, registry.ErrNotOwnerOrApproved)
	})
	t.Run("wrong from", func(t *testing.T) {
		err := quirkies.TransferFrom(ctx, alice, bob, operator, 1)
		require.ErrorIs(t, err, registry.ErrTransferFromIncorrectOwner)
	})
	t.Run("zero address", func(t *testing.T) {
		err := quirkies.TransferFrom(ctx, alice, alice, common.Address{}, 1)
		require.ErrorIs(t, err, registry.ErrZeroAddress)
		_, err = quirkies.BalanceOf(ctx, common.Address{})
		require.ErrorIs(t, err, registry.ErrZeroAddress)
	})
	t.Run("self approval", func(t *testing.T) {
		require.Error(t, quirkies.SetApprovalForAll(ctx, alice, alice, true))
	})
}

func TestPlaceholder(t *testing.T) {
	ctx := t.Context()
	staker := testutil.RandomAddress()
	alice := testutil.RandomAddress()
	placeholder := registry.NewPlaceholder(staker, "ipfs://placeholder/")

	_, err := placeholder.Mint(ctx, alice, alice, 2)
	require.ErrorIs(t, err, registry.ErrNotMinter)

	first, err := placeholder.Mint(ctx, staker, alice, 2)
	require.NoError(t, err)
	second, err := placeholder.Mint(ctx, staker, alice, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first)
	assert.Equal(t, uint64(1), second)

	original, err := placeholder.IDToMetadataMapping(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), original)

	uri, err := placeholder.TokenURI(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://placeholder/2.json", uri)

	require.ErrorIs(t, placeholder.Burn(ctx, alice, first), registry.ErrNotMinter)
	require.NoError(t, placeholder.Burn(ctx, staker, first))
	_, err = placeholder.TokenURI(ctx, first)
	require.ErrorIs(t, err, registry.ErrTokenNotFound)

	balance, err := placeholder.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	// burnt ids are not reused
	third, err := placeholder.Mint(ctx, staker, alice, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), third)
}

func TestReward(t *testing.T) {
	ctx := t.Context()
	staker := testutil.RandomAddress()
	alice := testutil.RandomAddress()
	reward := registry.NewReward(staker, "ipfs://reward/")

	require.ErrorIs(t, reward.MintKeyedByID(ctx, alice, alice, 2), registry.ErrNotMinter)
	require.NoError(t, reward.MintKeyedByID(ctx, staker, alice, 2))
	require.ErrorIs(t, reward.MintKeyedByID(ctx, staker, alice, 2), registry.ErrTokenAlreadyMinted)

	owner, err := reward.OwnerOf(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	uri, err := reward.TokenURI(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://reward/2.json", uri)

	_, err = reward.TokenURI(ctx, 3)
	require.ErrorIs(t, err, registry.ErrTokenNotFound)

	require.NoError(t, reward.Burn(ctx, staker, 2))
	balance, err := reward.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestSources(t *testing.T) {
	mem := registry.NewMemory(testutil.RandomAddress(), []string{"quirklings", "quirkies"}, "", "")

	sources, err := mem.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{"quirklings", "quirkies"}, sources.Names())

	src, err := sources.Get("quirkies")
	require.NoError(t, err)
	assert.Equal(t, "quirkies", src.Name())

	_, err = sources.Get("unknown")
	require.ErrorIs(t, err, registry.ErrSourceNotFound)

	_, err = registry.NewSources(registry.NewCollection("a"), registry.NewCollection("a"))
	require.Error(t, err)

	approver, ok := mem.Approver("placeholder")
	require.True(t, ok)
	assert.Equal(t, mem.Placeholder, approver)
	_, ok = mem.Approver("unknown")
	assert.False(t, ok)
}
