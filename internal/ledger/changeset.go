package ledger

import (
	"errors"
	"fmt"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

var (
	ErrSequenceMismatch = errors.New("changeset sequence mismatch")
	ErrRecordNotFound   = errors.New("stake record not found")
	ErrAlreadyStaked    = errors.New("asset already staked")
)

// Apply mutates the ledger with a committed changeset. The changeset is checked
// against the current state first, so a rejected changeset leaves the ledger
// untouched.
func (l *Ledger) Apply(cs *types.Changeset) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.check(cs); err != nil {
		return err
	}

	for _, record := range cs.Staked {
		l.recordStake(record)
	}
	for _, record := range cs.Unstaked {
		idx, _ := l.findRecordIndex(record.Owner, record.Asset)
		if _, err := l.removeRecord(record.Owner, idx); err != nil {
			// unreachable after check
			return err
		}
	}
	for _, id := range cs.Rewarded {
		l.claimed[id] = struct{}{}
	}

	l.sequence = cs.Sequence
	return nil
}

// Check reports whether Apply would accept cs, without mutating the ledger.
func (l *Ledger) Check(cs *types.Changeset) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.check(cs)
}

func (l *Ledger) check(cs *types.Changeset) error {
	if cs.Sequence != l.sequence+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrSequenceMismatch, l.sequence+1, cs.Sequence)
	}

	staking := make(map[types.AssetRef]struct{}, len(cs.Staked))
	for _, record := range cs.Staked {
		if _, ok := l.stakedBy[record.Asset]; ok {
			return fmt.Errorf("%w: %s", ErrAlreadyStaked, record.Asset)
		}
		if _, ok := staking[record.Asset]; ok {
			return fmt.Errorf("%w: %s appears twice", ErrAlreadyStaked, record.Asset)
		}
		staking[record.Asset] = struct{}{}
	}

	removing := make(map[types.AssetRef]struct{}, len(cs.Unstaked))
	for _, record := range cs.Unstaked {
		if _, ok := removing[record.Asset]; ok {
			return fmt.Errorf("%w: %s appears twice", ErrRecordNotFound, record.Asset)
		}
		idx, ok := l.findRecordIndex(record.Owner, record.Asset)
		if !ok || l.records[record.Owner][idx].PlaceholderID != record.PlaceholderID {
			return fmt.Errorf("%w: staker %s, asset %s", ErrRecordNotFound, record.Owner.Hex(), record.Asset)
		}
		removing[record.Asset] = struct{}{}
	}

	return nil
}
