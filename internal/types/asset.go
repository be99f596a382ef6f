package types

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AssetRef identifies an original collectible. ID is only unique within Source.
type AssetRef struct {
	Source string `json:"source"`
	ID     uint64 `json:"id"`
}

func (a AssetRef) String() string {
	return fmt.Sprintf("%s/%d", a.Source, a.ID)
}

// StakeRecord is the live bookkeeping entry for one staked asset.
type StakeRecord struct {
	Owner         common.Address `json:"owner"`
	Asset         AssetRef       `json:"asset"`
	PlaceholderID uint64         `json:"placeholder_id"`
	StakedAt      time.Time      `json:"staked_at"`
}
