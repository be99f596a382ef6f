package services

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sasha-s/go-deadlock"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/db"
	"github.com/babylonlabs-io/nft-staker/internal/eligibility"
	"github.com/babylonlabs-io/nft-staker/internal/ledger"
	"github.com/babylonlabs-io/nft-staker/internal/queue"
	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

// RegistryReplayer rebuilds registry state that does not outlive the process
// from the changesets replayed by Bootstrap.
type RegistryReplayer interface {
	Replay(ctx context.Context, cs *types.Changeset) error
}

type Service struct {
	cfg         *config.Config
	db          db.DbInterface
	ledger      *ledger.Ledger
	sources     *registry.Sources
	placeholder registry.PlaceholderRegistry
	reward      registry.RewardRegistry
	publisher   queue.Publisher
	clock       *eligibility.Clock
	now         func() time.Time
	replayer    RegistryReplayer

	// mu serializes Stake and Unstake
	mu deadlock.Mutex
}

type Option func(*Service)

// WithClock replaces the wall clock used to timestamp stakes and check
// eligibility.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithRegistryReplayer makes Bootstrap feed every replayed changeset to r.
func WithRegistryReplayer(r RegistryReplayer) Option {
	return func(s *Service) {
		s.replayer = r
	}
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	ledger *ledger.Ledger,
	sources *registry.Sources,
	placeholder registry.PlaceholderRegistry,
	reward registry.RewardRegistry,
	publisher queue.Publisher,
	opts ...Option,
) *Service {
	if publisher == nil {
		publisher = queue.NoopPublisher{}
	}

	s := &Service{
		cfg:         cfg,
		db:          db,
		ledger:      ledger,
		sources:     sources,
		placeholder: placeholder,
		reward:      reward,
		publisher:   publisher,
		clock:       eligibility.NewClock(cfg.Staking.RewardThreshold),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Custody is the operator stakers must approve on the staked collections and
// on the placeholder registry.
func (s *Service) Custody() common.Address {
	return s.cfg.Staking.Custody()
}

func (s *Service) Ledger() *ledger.Ledger {
	return s.ledger
}

func (s *Service) Clock() *eligibility.Clock {
	return s.clock
}
