// Package ledger keeps the in-memory staking bookkeeping: live stake records
// per staker, the append-only staker registry and the claimed-reward set.
//
// Each staker has a single list of records, so the staked-asset and
// placeholder projections are index aligned by construction. Removal swaps the
// last record into the removed slot: the order of a staker's list is not
// stable across removals.
package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sasha-s/go-deadlock"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

var ErrIndexOutOfRange = errors.New("stake record index out of range")

// Ledger holds the live stake records of every staker, the staker registry and
// the claimed-reward set.
//
// The claimed set is keyed by the bare asset id, not by source and id. A
// reward's id equals the id of the original that earned it, so the reward
// registry can only hold one reward per id across all sources. Claiming
// quirkies/7 therefore also makes staking quirklings/7 fail with AlreadyClaimed.
type Ledger struct {
	mu deadlock.RWMutex

	records  map[common.Address][]types.StakeRecord
	stakedBy map[types.AssetRef]common.Address
	claimed  map[uint64]struct{}
	sequence uint64

	// stakers is insertion ordered, membership is never revoked
	stakers   []common.Address
	stakerSet map[common.Address]struct{}
}

type Stats struct {
	Stakers       int
	ActiveStakers int
	StakedAssets  int
	ClaimedAssets int
}

func New() *Ledger {
	return &Ledger{
		records:   make(map[common.Address][]types.StakeRecord),
		stakerSet: make(map[common.Address]struct{}),
		stakedBy:  make(map[types.AssetRef]common.Address),
		claimed:   make(map[uint64]struct{}),
	}
}

// RecordStake appends a record for its owner and registers the owner as a
// staker if it is not registered yet.
func (l *Ledger) RecordStake(record types.StakeRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.recordStake(record)
}

func (l *Ledger) recordStake(record types.StakeRecord) {
	l.records[record.Owner] = append(l.records[record.Owner], record)
	l.stakedBy[record.Asset] = record.Owner

	if _, ok := l.stakerSet[record.Owner]; !ok {
		l.stakerSet[record.Owner] = struct{}{}
		l.stakers = append(l.stakers, record.Owner)
	}
}

// FindRecordIndex looks up the staker's record for asset. A missing record is
// reported with ok == false.
func (l *Ledger) FindRecordIndex(staker common.Address, asset types.AssetRef) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.findRecordIndex(staker, asset)
}

func (l *Ledger) findRecordIndex(staker common.Address, asset types.AssetRef) (int, bool) {
	for i, record := range l.records[staker] {
		if record.Asset == asset {
			return i, true
		}
	}
	return -1, false
}

// FindRecord returns a copy of the staker's record for asset.
func (l *Ledger) FindRecord(staker common.Address, asset types.AssetRef) (types.StakeRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.findRecordIndex(staker, asset)
	if !ok {
		return types.StakeRecord{}, false
	}
	return l.records[staker][idx], true
}

// RemoveRecord removes the record at index using swap-and-truncate and returns it.
func (l *Ledger) RemoveRecord(staker common.Address, index int) (types.StakeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removeRecord(staker, index)
}

func (l *Ledger) removeRecord(staker common.Address, index int) (types.StakeRecord, error) {
	list := l.records[staker]
	if index < 0 || index >= len(list) {
		return types.StakeRecord{}, fmt.Errorf("%w: staker %s, index %d, size %d", ErrIndexOutOfRange, staker.Hex(), index, len(list))
	}

	removed := list[index]
	last := len(list) - 1
	list[index] = list[last]
	list[last] = types.StakeRecord{}
	l.records[staker] = list[:last]

	delete(l.stakedBy, removed.Asset)
	return removed, nil
}

func (l *Ledger) ListStakedAssets(staker common.Address) []types.AssetRef {
	l.mu.RLock()
	defer l.mu.RUnlock()

	list := l.records[staker]
	assets := make([]types.AssetRef, len(list))
	for i, record := range list {
		assets[i] = record.Asset
	}
	return assets
}

// ListPlaceholderReceipts is index aligned with ListStakedAssets as long as
// no call mutates the staker's records in between.
func (l *Ledger) ListPlaceholderReceipts(staker common.Address) []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	list := l.records[staker]
	ids := make([]uint64, len(list))
	for i, record := range list {
		ids[i] = record.PlaceholderID
	}
	return ids
}

func (l *Ledger) Records(staker common.Address) []types.StakeRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	list := l.records[staker]
	out := make([]types.StakeRecord, len(list))
	copy(out, list)
	return out
}

func (l *Ledger) ListStakerAddresses() []common.Address {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]common.Address, len(l.stakers))
	copy(out, l.stakers)
	return out
}

// StakerOf returns the address currently staking asset.
func (l *Ledger) StakerOf(asset types.AssetRef) (common.Address, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	owner, ok := l.stakedBy[asset]
	return owner, ok
}

func (l *Ledger) IsClaimed(id uint64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.claimed[id]
	return ok
}

// MarkClaimed inserts id into the claimed set. Inserting twice is a no-op.
func (l *Ledger) MarkClaimed(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.claimed[id] = struct{}{}
}

func (l *Ledger) AssetState(asset types.AssetRef) types.AssetState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.stakedBy[asset]; ok {
		return types.AssetStateStaked
	}
	if _, ok := l.claimed[asset.ID]; ok {
		return types.AssetStateClaimed
	}
	return types.AssetStateUnstaked
}

// ClaimedIDs returns the claimed set in ascending order.
func (l *Ledger) ClaimedIDs() []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]uint64, 0, len(l.claimed))
	for id := range l.claimed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := Stats{
		Stakers:       len(l.stakers),
		StakedAssets:  len(l.stakedBy),
		ClaimedAssets: len(l.claimed),
	}
	for _, list := range l.records {
		if len(list) > 0 {
			stats.ActiveStakers++
		}
	}
	return stats
}

// Sequence is the sequence number of the last applied changeset.
func (l *Ledger) Sequence() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.sequence
}
