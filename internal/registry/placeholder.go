package registry

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// Placeholder is the receipt registry. Only the staking operator may mint or
// burn. Receipt ids start at 0 and are never reused.
type Placeholder struct {
	*tokens

	minter   common.Address
	baseURI  string
	metadata map[uint64]uint64
}

var _ PlaceholderRegistry = (*Placeholder)(nil)

func NewPlaceholder(minter common.Address, baseURI string) *Placeholder {
	return &Placeholder{
		tokens:   newTokens("placeholder"),
		minter:   minter,
		baseURI:  baseURI,
		metadata: make(map[uint64]uint64),
	}
}

func (p *Placeholder) Mint(_ context.Context, minter, to common.Address, originalID uint64) (uint64, error) {
	if minter != p.minter {
		return 0, ErrNotMinter
	}
	if to == (common.Address{}) {
		return 0, ErrZeroAddress
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.mintNext(to)
	p.metadata[id] = originalID
	return id, nil
}

func (p *Placeholder) Burn(_ context.Context, minter common.Address, id uint64) error {
	if minter != p.minter {
		return ErrNotMinter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.burn(id); err != nil {
		return err
	}
	delete(p.metadata, id)
	return nil
}

func (p *Placeholder) IDToMetadataMapping(_ context.Context, id uint64) (uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	original, ok := p.metadata[id]
	if !ok {
		return 0, fmt.Errorf("%w: placeholder/%d", ErrTokenNotFound, id)
	}
	return original, nil
}

// TokenURI is baseURI + original asset id + ".json".
func (p *Placeholder) TokenURI(ctx context.Context, id uint64) (string, error) {
	original, err := p.IDToMetadataMapping(ctx, id)
	if err != nil {
		return "", err
	}
	return p.baseURI + strconv.FormatUint(original, 10) + ".json", nil
}
