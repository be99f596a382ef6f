package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/types"
)

type ChangesetDocument struct {
	Sequence  uint64                `bson:"_id"`
	Operation string                `bson:"operation"`
	Caller    string                `bson:"caller"`    // checksummed hex
	Timestamp int64                 `bson:"timestamp"` // unix nanos
	Staked    []StakeRecordDocument `bson:"staked,omitempty"`
	Unstaked  []StakeRecordDocument `bson:"unstaked,omitempty"`
	Rewarded  []uint64              `bson:"rewarded,omitempty"`
}

type StakeRecordDocument struct {
	Owner         string `bson:"owner"`
	Source        string `bson:"source"`
	AssetID       uint64 `bson:"asset_id"`
	PlaceholderID uint64 `bson:"placeholder_id"`
	StakedAt      int64  `bson:"staked_at"` // unix nanos
}

func FromChangeset(cs *types.Changeset) *ChangesetDocument {
	return &ChangesetDocument{
		Sequence:  cs.Sequence,
		Operation: cs.Operation.String(),
		Caller:    cs.Caller.Hex(),
		Timestamp: cs.Timestamp.UnixNano(),
		Staked:    fromStakeRecords(cs.Staked),
		Unstaked:  fromStakeRecords(cs.Unstaked),
		Rewarded:  append([]uint64(nil), cs.Rewarded...),
	}
}

func (d *ChangesetDocument) ToChangeset() *types.Changeset {
	return &types.Changeset{
		Sequence:  d.Sequence,
		Operation: types.Operation(d.Operation),
		Caller:    common.HexToAddress(d.Caller),
		Timestamp: time.Unix(0, d.Timestamp).UTC(),
		Staked:    toStakeRecords(d.Staked),
		Unstaked:  toStakeRecords(d.Unstaked),
		Rewarded:  append([]uint64(nil), d.Rewarded...),
	}
}

func fromStakeRecords(records []types.StakeRecord) []StakeRecordDocument {
	if len(records) == 0 {
		return nil
	}

	docs := make([]StakeRecordDocument, 0, len(records))
	for _, r := range records {
		docs = append(docs, StakeRecordDocument{
			Owner:         r.Owner.Hex(),
			Source:        r.Asset.Source,
			AssetID:       r.Asset.ID,
			PlaceholderID: r.PlaceholderID,
			StakedAt:      r.StakedAt.UnixNano(),
		})
	}
	return docs
}

func toStakeRecords(docs []StakeRecordDocument) []types.StakeRecord {
	if len(docs) == 0 {
		return nil
	}

	records := make([]types.StakeRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, types.StakeRecord{
			Owner:         common.HexToAddress(d.Owner),
			Asset:         types.AssetRef{Source: d.Source, ID: d.AssetID},
			PlaceholderID: d.PlaceholderID,
			StakedAt:      time.Unix(0, d.StakedAt).UTC(),
		})
	}
	return records
}
