package db

import (
	"context"
	"errors"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/nft-staker/internal/db/model"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

func (db *Database) SaveChangeset(ctx context.Context, cs *types.Changeset) error {
	if cs == nil {
		return errors.New("nil changeset")
	}

	doc := model.FromChangeset(cs)
	_, err := db.collection(model.LedgerChangesetsCollection).
		InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     strconv.FormatUint(cs.Sequence, 10),
						Message: "changeset already exists",
					}
				}
			}
		}
		return err
	}

	return nil
}

func (db *Database) GetChangesets(ctx context.Context, afterSequence uint64, limit int64) ([]*types.Changeset, error) {
	filter := bson.M{"_id": bson.M{"$gt": afterSequence}}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	return db.findChangesets(ctx, filter, opts)
}

func (db *Database) GetChangesetsByCaller(ctx context.Context, caller common.Address) ([]*types.Changeset, error) {
	filter := bson.M{"caller": caller.Hex()}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	return db.findChangesets(ctx, filter, opts)
}

func (db *Database) findChangesets(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*types.Changeset, error) {
	cursor, err := db.collection(model.LedgerChangesetsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.ChangesetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	changesets := make([]*types.Changeset, 0, len(docs))
	for i := range docs {
		changesets = append(changesets, docs[i].ToChangeset())
	}
	return changesets, nil
}

// GetLastSequence returns 0 when no changeset was saved yet.
func (db *Database) GetLastSequence(ctx context.Context) (uint64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetProjection(bson.M{"_id": 1})

	var doc model.ChangesetDocument
	err := db.collection(model.LedgerChangesetsCollection).
		FindOne(ctx, bson.M{}, opts).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return doc.Sequence, nil
}
