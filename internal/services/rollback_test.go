package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/ledger"
	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/testutil"
	"github.com/babylonlabs-io/nft-staker/tests/mocks"
)

func TestStakeRollback(t *testing.T) {
	// registry calls run with a context derived from the caller's, so the
	// context is matched with mock.Anything
	ctx := mock.Anything
	errRegistry := errors.New("registry unavailable")

	setup := func(t *testing.T) (*fixture, *mocks.AssetSource, *mocks.PlaceholderRegistry, *mocks.DbInterface) {
		f := newFixture(t)
		src := mocks.NewAssetSource(t)
		placeholder := mocks.NewPlaceholderRegistry(t)
		store := mocks.NewDbInterface(t)

		src.On("Name").Return(quirkies).Maybe()
		sources, err := registry.NewSources(src)
		require.NoError(t, err)

		f.service = NewService(f.cfg, store, ledger.New(), sources, placeholder, mocks.NewRewardRegistry(t), nil,
			WithClock(func() time.Time { return f.now }),
		)
		return f, src, placeholder, store
	}

	t.Run("placeholder mint fails", func(t *testing.T) {
		f, src, placeholder, _ := setup(t)
		alice := testutil.RandomAddress()

		for _, id := range []uint64{1, 2} {
			src.On("OwnerOf", ctx, id).Return(alice, nil).Once()
		}
		src.On("IsApprovedForAll", ctx, alice, f.custody).Return(true, nil).Times(2)

		mock.InOrder(
			src.On("TransferFrom", ctx, f.custody, alice, f.custody, uint64(1)).Return(nil).Once(),
			placeholder.On("Mint", ctx, f.custody, alice, uint64(1)).Return(uint64(0), nil).Once(),
			src.On("TransferFrom", ctx, f.custody, alice, f.custody, uint64(2)).Return(nil).Once(),
			placeholder.On("Mint", ctx, f.custody, alice, uint64(2)).Return(uint64(0), errRegistry).Once(),
			// undo, newest first
			src.On("TransferFrom", ctx, f.custody, f.custody, alice, uint64(2)).Return(nil).Once(),
			placeholder.On("Burn", ctx, f.custody, uint64(0)).Return(nil).Once(),
			src.On("TransferFrom", ctx, f.custody, f.custody, alice, uint64(1)).Return(nil).Once(),
		)

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 1), asset(quirkies, 2)})
		requireErrorCode(t, err, types.InternalServiceError)
		assert.ErrorIs(t, err, errRegistry)
		assert.Empty(t, f.service.GetStakerAddresses(f.ctx))
		assert.Zero(t, f.service.Ledger().Sequence())
	})

	t.Run("store fails", func(t *testing.T) {
		f, src, placeholder, store := setup(t)
		alice := testutil.RandomAddress()
		errStore := errors.New("store unavailable")

		src.On("OwnerOf", ctx, uint64(7)).Return(alice, nil).Once()
		src.On("IsApprovedForAll", ctx, alice, f.custody).Return(true, nil).Once()
		mock.InOrder(
			src.On("TransferFrom", ctx, f.custody, alice, f.custody, uint64(7)).Return(nil).Once(),
			placeholder.On("Mint", ctx, f.custody, alice, uint64(7)).Return(uint64(5), nil).Once(),
			store.On("SaveChangeset", ctx, mock.MatchedBy(func(cs *types.Changeset) bool {
				return cs.Sequence == 1 && len(cs.Staked) == 1 && cs.Staked[0].PlaceholderID == 5
			})).Return(errStore).Once(),
			placeholder.On("Burn", ctx, f.custody, uint64(5)).Return(nil).Once(),
			src.On("TransferFrom", ctx, f.custody, f.custody, alice, uint64(7)).Return(nil).Once(),
		)

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 7)})
		requireErrorCode(t, err, types.InternalServiceError)
		assert.ErrorIs(t, err, errStore)
		assert.Empty(t, f.service.GetStakedTokens(f.ctx, alice))
	})

	t.Run("failed undo step does not stop the rollback", func(t *testing.T) {
		f, src, placeholder, store := setup(t)
		alice := testutil.RandomAddress()

		src.On("OwnerOf", ctx, uint64(7)).Return(alice, nil).Once()
		src.On("IsApprovedForAll", ctx, alice, f.custody).Return(true, nil).Once()
		src.On("TransferFrom", ctx, f.custody, alice, f.custody, uint64(7)).Return(nil).Once()
		placeholder.On("Mint", ctx, f.custody, alice, uint64(7)).Return(uint64(5), nil).Once()
		store.On("SaveChangeset", ctx, mock.Anything).Return(errors.New("store unavailable")).Once()
		placeholder.On("Burn", ctx, f.custody, uint64(5)).Return(errRegistry).Once()
		src.On("TransferFrom", ctx, f.custody, f.custody, alice, uint64(7)).Return(nil).Once()

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 7)})
		requireErrorCode(t, err, types.InternalServiceError)
	})

	t.Run("validation errors make no registry writes", func(t *testing.T) {
		f, src, _, _ := setup(t)
		alice := testutil.RandomAddress()

		src.On("OwnerOf", ctx, uint64(1)).Return(alice, nil).Once()
		src.On("IsApprovedForAll", ctx, alice, f.custody).Return(true, nil).Once()
		src.On("OwnerOf", ctx, uint64(2)).Return(alice, nil).Once()
		src.On("IsApprovedForAll", ctx, alice, f.custody).Return(false, nil).Once()
		src.On("OwnerOf", ctx, uint64(3)).Return(testutil.RandomAddress(), nil).Maybe()

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 1), asset(quirkies, 2), asset(quirkies, 3)})
		require.NotNil(t, err)
		assert.Contains(t, []types.ErrorCode{types.NotApproved, types.NotOwner}, err.ErrorCode)
		src.AssertNotCalled(t, "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("registry read failure is internal", func(t *testing.T) {
		f, src, _, _ := setup(t)
		alice := testutil.RandomAddress()

		src.On("OwnerOf", ctx, uint64(1)).Return(alice, errRegistry).Once()

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 1)})
		requireErrorCode(t, err, types.InternalServiceError)
		assert.ErrorIs(t, err, errRegistry)
	})
}

func TestUnstakeRollback(t *testing.T) {
	t.Run("reward mint fails", func(t *testing.T) {
		f := newFixture(t)
		alice := f.newStaker(2)

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 0), asset(quirkies, 1)})
		require.Nil(t, err)

		reward := mocks.NewRewardRegistry(t)
		reward.On("MintKeyedByID", mock.Anything, f.custody, alice, mock.AnythingOfType("uint64")).
			Return(errors.New("reward registry unavailable")).Once()

		// same ledger, store and registries, failing reward registry
		f.service = f.newService(f.service.Ledger(), reward, nil)
		f.advance(31 * day)

		_, err = f.service.Unstake(f.ctx, alice, []types.AssetRef{asset(quirkies, 0), asset(quirkies, 1)})
		requireErrorCode(t, err, types.InternalServiceError)

		assert.Equal(t, uint64(2), f.placeholderBalance(alice))
		assert.Equal(t, f.custody, f.ownerOf(quirkies, 0))
		assert.Equal(t, f.custody, f.ownerOf(quirkies, 1))
		assert.ElementsMatch(t,
			[]types.AssetRef{asset(quirkies, 0), asset(quirkies, 1)},
			f.service.GetStakedTokens(f.ctx, alice),
		)
		assert.False(t, f.service.ClaimedNfts(f.ctx, 0))
		assert.Equal(t, uint64(1), f.service.Ledger().Sequence())
	})

	t.Run("publisher failure does not fail the call", func(t *testing.T) {
		publisher := mocks.NewPublisher(t)
		f := newFixtureWithPublisher(t, publisher)
		alice := f.newStaker(1)

		publisher.On("PushLedgerEvent", mock.Anything, mock.MatchedBy(func(cs *types.Changeset) bool {
			return cs.Sequence == 1 && cs.Operation == types.OperationStake
		})).Return(errors.New("queue down")).Once()

		_, err := f.service.Stake(f.ctx, alice, []types.AssetRef{asset(quirkies, 0)})
		require.Nil(t, err)
		assert.Equal(t, []types.AssetRef{asset(quirkies, 0)}, f.service.GetStakedTokens(f.ctx, alice))
	})
}
