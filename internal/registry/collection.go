package registry

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sasha-s/go-deadlock"
)

// tokens is an in-memory ERC-721 style ownership ledger shared by Collection,
// Placeholder and Reward.
type tokens struct {
	name string

	mu        deadlock.RWMutex
	owners    map[uint64]common.Address
	balances  map[common.Address]uint64
	operators map[common.Address]map[common.Address]bool
	nextID    uint64
}

func newTokens(name string) *tokens {
	return &tokens{
		name:      name,
		owners:    make(map[uint64]common.Address),
		balances:  make(map[common.Address]uint64),
		operators: make(map[common.Address]map[common.Address]bool),
	}
}

// Collection is a staked collection. Anyone may mint from it.
type Collection struct {
	*tokens
}

var _ AssetSource = (*Collection)(nil)

func NewCollection(name string) *Collection {
	return &Collection{tokens: newTokens(name)}
}

func (c *tokens) Name() string {
	return c.name
}

func (c *tokens) OwnerOf(_ context.Context, id uint64) (common.Address, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	owner, ok := c.owners[id]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s/%d", ErrTokenNotFound, c.name, id)
	}
	return owner, nil
}

func (c *tokens) BalanceOf(_ context.Context, owner common.Address) (uint64, error) {
	if owner == (common.Address{}) {
		return 0, ErrZeroAddress
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.balances[owner], nil
}

func (c *tokens) IsApprovedForAll(_ context.Context, owner, operator common.Address) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.operators[owner][operator], nil
}

func (c *tokens) SetApprovalForAll(_ context.Context, owner, operator common.Address, approved bool) error {
	if owner == operator {
		return fmt.Errorf("ERC721: approve to caller")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.operators[owner] == nil {
		c.operators[owner] = make(map[common.Address]bool)
	}
	c.operators[owner][operator] = approved
	return nil
}

func (c *tokens) TransferFrom(_ context.Context, operator, from, to common.Address, id uint64) error {
	if to == (common.Address{}) {
		return ErrZeroAddress
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	owner, ok := c.owners[id]
	if !ok {
		return fmt.Errorf("%w: %s/%d", ErrTokenNotFound, c.name, id)
	}
	if operator != owner && !c.operators[owner][operator] {
		return fmt.Errorf("%w: %s/%d", ErrNotOwnerOrApproved, c.name, id)
	}
	if owner != from {
		return fmt.Errorf("%w: %s/%d", ErrTransferFromIncorrectOwner, c.name, id)
	}

	c.balances[from]--
	c.balances[to]++
	c.owners[id] = to
	return nil
}

// Mint mints amount sequential ids to to and returns them.
func (c *Collection) Mint(_ context.Context, to common.Address, amount uint64) ([]uint64, error) {
	if to == (common.Address{}) {
		return nil, ErrZeroAddress
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]uint64, 0, amount)
	for range amount {
		ids = append(ids, c.mintNext(to))
	}
	return ids, nil
}

// mintNext mints the next sequential id. Caller holds the write lock.
func (c *tokens) mintNext(to common.Address) uint64 {
	id := c.nextID
	c.nextID++
	c.owners[id] = to
	c.balances[to]++
	return id
}

// mintID mints a caller chosen id. Caller holds the write lock.
func (c *tokens) mintID(to common.Address, id uint64) error {
	if _, ok := c.owners[id]; ok {
		return fmt.Errorf("%w: %s/%d", ErrTokenAlreadyMinted, c.name, id)
	}
	c.owners[id] = to
	c.balances[to]++
	return nil
}

// burn removes id. Caller holds the write lock.
func (c *tokens) burn(id uint64) error {
	owner, ok := c.owners[id]
	if !ok {
		return fmt.Errorf("%w: %s/%d", ErrTokenNotFound, c.name, id)
	}
	delete(c.owners, id)
	c.balances[owner]--
	return nil
}

// restore makes to the owner of id, minting it when it does not exist, and
// keeps sequential mints clear of id. Caller holds the write lock.
func (c *tokens) restore(to common.Address, id uint64) {
	if owner, ok := c.owners[id]; ok {
		c.balances[owner]--
	}
	c.owners[id] = to
	c.balances[to]++
	if id >= c.nextID {
		c.nextID = id + 1
	}
}
