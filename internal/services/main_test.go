package services

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/db"
	"github.com/babylonlabs-io/nft-staker/internal/eligibility"
	"github.com/babylonlabs-io/nft-staker/internal/ledger"
	"github.com/babylonlabs-io/nft-staker/internal/queue"
	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/testutil"
)

const (
	quirkies           = "quirkies"
	quirklings         = "quirklings"
	placeholderBaseURI = "ipfs://placeholder/"
	rewardBaseURI      = "ipfs://reward/"

	day = 24 * time.Hour
)

// fixture wires a service to in-memory registries, an in-memory store and a
// manual clock.
type fixture struct {
	t       *testing.T
	ctx     context.Context
	now     time.Time
	cfg     *config.Config
	custody common.Address
	memory  *registry.Memory
	store   *db.MemoryDatabase
	service *Service
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithPublisher(t, nil)
}

func newFixtureWithPublisher(t *testing.T, publisher queue.Publisher) *fixture {
	t.Helper()

	custody := testutil.RandomAddress()
	cfg := testConfig(custody)

	f := &fixture{
		t:       t,
		ctx:     context.Background(),
		now:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		cfg:     cfg,
		custody: custody,
		memory:  registry.NewMemory(custody, []string{quirklings, quirkies}, placeholderBaseURI, rewardBaseURI),
		store:   db.NewMemory(),
	}
	f.service = f.newService(ledger.New(), f.memory.Reward, publisher)
	return f
}

func testConfig(custody common.Address) *config.Config {
	return &config.Config{
		Staking: config.StakingConfig{
			CustodyAddress:    custody.Hex(),
			RewardThreshold:   eligibility.DefaultRewardThreshold,
			MaxBatchSize:      10,
			DefaultSource:     quirkies,
			ValidationWorkers: 4,
		},
		Poller: config.PollerConfig{
			StatsPollingInterval: time.Minute,
		},
	}
}

func (f *fixture) newService(l *ledger.Ledger, reward registry.RewardRegistry, publisher queue.Publisher, opts ...Option) *Service {
	f.t.Helper()

	sources, err := f.memory.Sources()
	require.NoError(f.t, err)

	opts = append([]Option{WithClock(func() time.Time { return f.now })}, opts...)
	return NewService(f.cfg, f.store, l, sources, f.memory.Placeholder, reward, publisher, opts...)
}

// restart drops the ledger and the in-memory registries and bootstraps a new
// service over the same store. With replay the registries are rebuilt from the
// store as well.
func (f *fixture) restart(replay bool) error {
	f.t.Helper()

	f.memory = registry.NewMemory(f.custody, []string{quirklings, quirkies}, placeholderBaseURI, rewardBaseURI)

	var opts []Option
	if replay {
		opts = append(opts, WithRegistryReplayer(f.memory))
	}
	f.service = f.newService(ledger.New(), f.memory.Reward, nil, opts...)
	return f.service.Bootstrap(f.ctx)
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// mint gives to amount fresh ids of source
func (f *fixture) mint(source string, to common.Address, amount uint64) []uint64 {
	f.t.Helper()

	c, ok := f.memory.Collection(source)
	require.True(f.t, ok)
	ids, err := c.Mint(f.ctx, to, amount)
	require.NoError(f.t, err)
	return ids
}

// approve lets custody move owner's tokens on registryName
func (f *fixture) approve(owner common.Address, registryName string) {
	f.t.Helper()

	a, ok := f.memory.Approver(registryName)
	require.True(f.t, ok)
	require.NoError(f.t, a.SetApprovalForAll(f.ctx, owner, f.custody, true))
}

// newStaker returns an address holding amount quirkies that approved custody
// on quirkies and on the placeholder registry.
func (f *fixture) newStaker(amount uint64) common.Address {
	f.t.Helper()

	staker := testutil.RandomAddress()
	f.mint(quirkies, staker, amount)
	f.approve(staker, quirkies)
	f.approve(staker, placeholderRegistryName)
	return staker
}

func (f *fixture) ownerOf(source string, id uint64) common.Address {
	f.t.Helper()

	c, ok := f.memory.Collection(source)
	require.True(f.t, ok)
	owner, err := c.OwnerOf(f.ctx, id)
	require.NoError(f.t, err)
	return owner
}

func (f *fixture) placeholderBalance(owner common.Address) uint64 {
	f.t.Helper()

	balance, err := f.memory.Placeholder.BalanceOf(f.ctx, owner)
	require.NoError(f.t, err)
	return balance
}

func (f *fixture) rewardBalance(owner common.Address) uint64 {
	f.t.Helper()

	balance, err := f.memory.Reward.BalanceOf(f.ctx, owner)
	require.NoError(f.t, err)
	return balance
}

func asset(source string, id uint64) types.AssetRef {
	return types.AssetRef{Source: source, ID: id}
}

func requireErrorCode(t *testing.T, err *types.Error, code types.ErrorCode) {
	t.Helper()

	require.NotNil(t, err)
	require.Equal(t, code, err.ErrorCode, err.Error())
}
