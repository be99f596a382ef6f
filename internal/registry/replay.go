package registry

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

// Replay applies the ownership changes of a committed changeset to the
// in-memory registries, so a restarted process agrees with the ledger it
// rebuilds from the store. Tokens never staked and operator approvals are not
// in the changeset log and stay lost.
func (m *Memory) Replay(_ context.Context, cs *types.Changeset) error {
	custody := m.Placeholder.minter

	for _, record := range cs.Staked {
		if err := m.restoreAsset(record.Asset, custody); err != nil {
			return err
		}
		m.Placeholder.restoreReceipt(record.Owner, record.PlaceholderID, record.Asset.ID)
	}

	for _, record := range cs.Unstaked {
		if err := m.restoreAsset(record.Asset, record.Owner); err != nil {
			return err
		}
		// retired receipts sit with custody
		m.Placeholder.restoreReceipt(custody, record.PlaceholderID, record.Asset.ID)
	}

	m.Reward.mu.Lock()
	defer m.Reward.mu.Unlock()
	for _, id := range cs.Rewarded {
		m.Reward.restore(cs.Caller, id)
	}

	return nil
}

func (m *Memory) restoreAsset(asset types.AssetRef, owner common.Address) error {
	c, ok := m.Collection(asset.Source)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSourceNotFound, asset.Source)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.restore(owner, asset.ID)
	return nil
}

func (p *Placeholder) restoreReceipt(owner common.Address, id, originalID uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.restore(owner, id)
	p.metadata[id] = originalID
}
