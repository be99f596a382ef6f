package model

const LedgerStatsID = "ledger_stats"

// LedgerStatsDocument is the periodically refreshed ledger snapshot
type LedgerStatsDocument struct {
	ID            string `bson:"_id"` // Always "ledger_stats"
	Stakers       uint64 `bson:"stakers"`
	ActiveStakers uint64 `bson:"active_stakers"`
	StakedAssets  uint64 `bson:"staked_assets"`
	ClaimedAssets uint64 `bson:"claimed_assets"`
	Sequence      uint64 `bson:"sequence"`
	LastUpdated   int64  `bson:"last_updated"` // Unix timestamp of last update
}
