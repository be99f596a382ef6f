package pkg

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var ErrZeroAddress = errors.New("zero address is not allowed")

// ParseAddress parses a 0x-prefixed (or bare) hex account address. The zero
// address is rejected since no one can hold assets at it.
func ParseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid address %q", address)
	}

	addr := common.HexToAddress(address)
	if addr == (common.Address{}) {
		return common.Address{}, ErrZeroAddress
	}
	return addr, nil
}
