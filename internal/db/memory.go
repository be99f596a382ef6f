package db

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sasha-s/go-deadlock"

	"github.com/babylonlabs-io/nft-staker/internal/db/model"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

// MemoryDatabase keeps changesets in process memory. It stores the same
// documents the mongo implementation does so both round-trip identically.
type MemoryDatabase struct {
	mu         deadlock.RWMutex
	changesets map[uint64]model.ChangesetDocument
	stats      *model.LedgerStatsDocument
}

var _ DbInterface = (*MemoryDatabase)(nil)

func NewMemory() *MemoryDatabase {
	return &MemoryDatabase{
		changesets: make(map[uint64]model.ChangesetDocument),
	}
}

func (m *MemoryDatabase) Ping(context.Context) error {
	return nil
}

func (m *MemoryDatabase) SaveChangeset(_ context.Context, cs *types.Changeset) error {
	if cs == nil {
		return errors.New("nil changeset")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.changesets[cs.Sequence]; ok {
		return &DuplicateKeyError{
			Key:     strconv.FormatUint(cs.Sequence, 10),
			Message: "changeset already exists",
		}
	}
	m.changesets[cs.Sequence] = *model.FromChangeset(cs)
	return nil
}

func (m *MemoryDatabase) GetChangesets(_ context.Context, afterSequence uint64, limit int64) ([]*types.Changeset, error) {
	return m.filter(func(doc *model.ChangesetDocument) bool {
		return doc.Sequence > afterSequence
	}, limit), nil
}

func (m *MemoryDatabase) GetChangesetsByCaller(_ context.Context, caller common.Address) ([]*types.Changeset, error) {
	hex := caller.Hex()
	return m.filter(func(doc *model.ChangesetDocument) bool {
		return doc.Caller == hex
	}, 0), nil
}

func (m *MemoryDatabase) GetLastSequence(context.Context) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var last uint64
	for seq := range m.changesets {
		if seq > last {
			last = seq
		}
	}
	return last, nil
}

func (m *MemoryDatabase) UpsertLedgerStats(_ context.Context, stats *LedgerStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats = &model.LedgerStatsDocument{
		ID:            model.LedgerStatsID,
		Stakers:       stats.Stakers,
		ActiveStakers: stats.ActiveStakers,
		StakedAssets:  stats.StakedAssets,
		ClaimedAssets: stats.ClaimedAssets,
		Sequence:      stats.Sequence,
	}
	return nil
}

// LedgerStats returns the last upserted stats or nil.
func (m *MemoryDatabase) LedgerStats() *LedgerStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.stats == nil {
		return nil
	}
	return &LedgerStats{
		Stakers:       m.stats.Stakers,
		ActiveStakers: m.stats.ActiveStakers,
		StakedAssets:  m.stats.StakedAssets,
		ClaimedAssets: m.stats.ClaimedAssets,
		Sequence:      m.stats.Sequence,
	}
}

func (m *MemoryDatabase) filter(keep func(doc *model.ChangesetDocument) bool, limit int64) []*types.Changeset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sequences := make([]uint64, 0, len(m.changesets))
	for seq := range m.changesets {
		sequences = append(sequences, seq)
	}
	sort.Slice(sequences, func(i, j int) bool { return sequences[i] < sequences[j] })

	result := make([]*types.Changeset, 0)
	for _, seq := range sequences {
		doc := m.changesets[seq]
		if !keep(&doc) {
			continue
		}
		result = append(result, doc.ToChangeset())
		if limit > 0 && int64(len(result)) == limit {
			break
		}
	}
	return result
}
