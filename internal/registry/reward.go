package registry

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// Reward is the reward registry. A reward's id equals the id of the original
// asset that earned it, so each id can be minted once.
type Reward struct {
	*tokens

	minter  common.Address
	baseURI string
}

var _ RewardRegistry = (*Reward)(nil)

func NewReward(minter common.Address, baseURI string) *Reward {
	return &Reward{
		tokens:  newTokens("reward"),
		minter:  minter,
		baseURI: baseURI,
	}
}

func (r *Reward) MintKeyedByID(_ context.Context, minter, to common.Address, id uint64) error {
	if minter != r.minter {
		return ErrNotMinter
	}
	if to == (common.Address{}) {
		return ErrZeroAddress
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mintID(to, id)
}

func (r *Reward) Burn(_ context.Context, minter common.Address, id uint64) error {
	if minter != r.minter {
		return ErrNotMinter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.burn(id)
}

func (r *Reward) TokenURI(ctx context.Context, id uint64) (string, error) {
	if _, err := r.OwnerOf(ctx, id); err != nil {
		return "", err
	}
	return r.baseURI + strconv.FormatUint(id, 10) + ".json", nil
}
