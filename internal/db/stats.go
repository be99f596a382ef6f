package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/nft-staker/internal/db/model"
)

// UpsertLedgerStats updates or inserts the single ledger stats document
func (db *Database) UpsertLedgerStats(ctx context.Context, stats *LedgerStats) error {
	filter := bson.M{"_id": model.LedgerStatsID}
	update := bson.M{
		"$set": bson.M{
			"stakers":        stats.Stakers,
			"active_stakers": stats.ActiveStakers,
			"staked_assets":  stats.StakedAssets,
			"claimed_assets": stats.ClaimedAssets,
			"sequence":       stats.Sequence,
			"last_updated":   time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.LedgerStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
