package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Operation string

const (
	OperationStake   Operation = "stake"
	OperationUnstake Operation = "unstake"
)

func (o Operation) String() string {
	return string(o)
}

// Changeset is everything one committed stake/unstake call changed in the
// ledger. Changesets are persisted in order and replayed on startup.
type Changeset struct {
	Sequence  uint64         `json:"sequence"`
	Operation Operation      `json:"operation"`
	Caller    common.Address `json:"caller"`
	Timestamp time.Time      `json:"timestamp"`
	// Staked holds records created by a stake call.
	Staked []StakeRecord `json:"staked,omitempty"`
	// Unstaked holds records removed by an unstake call.
	Unstaked []StakeRecord `json:"unstaked,omitempty"`
	// Rewarded lists original asset ids that were paid a reward.
	Rewarded []uint64 `json:"rewarded,omitempty"`
}
