package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

// RandomAddress returns a random non-zero address.
func RandomAddress() common.Address {
	var addr common.Address
	for addr == (common.Address{}) {
		for i := range addr {
			addr[i] = gofakeit.Uint8()
		}
	}
	return addr
}

// RandomStakeRecord returns a record owned by owner for a random asset of source.
// Ids stay within int64 range so records survive a bson round trip.
func RandomStakeRecord(owner common.Address, source string) types.StakeRecord {
	return types.StakeRecord{
		Owner: owner,
		Asset: types.AssetRef{
			Source: source,
			ID:     uint64(gofakeit.Uint32()),
		},
		PlaceholderID: uint64(gofakeit.Uint32()),
		StakedAt:      gofakeit.DateRange(time.Unix(0, 0), time.Now()).UTC(),
	}
}
