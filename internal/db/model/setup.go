package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/nft-staker/internal/config"
)

const (
	LedgerChangesetsCollection = "ledger_changesets"
	LedgerStatsCollection      = "ledger_stats"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	LedgerChangesetsCollection: {
		{Indexes: map[string]int{"caller": 1, "_id": 1}, Unique: false},
		{Indexes: map[string]int{"staked.owner": 1}, Unique: false},
	},
	LedgerStatsCollection: {{Indexes: map[string]int{}}},
}

// Setup creates the collections and indexes the ledger store needs
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)
	for name, idxs := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range idxs {
			if len(idx.Indexes) == 0 {
				continue
			}
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("Collections and indexes created successfully.")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	existing, err := database.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(existing) > 0 {
		log.Ctx(ctx).Debug().Str("collection", name).Msg("Collection already exists")
		return nil
	}

	if err := database.CreateCollection(ctx, name); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	log.Ctx(ctx).Debug().Str("collection", name).Msg("Collection created")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	keys := bson.D{}
	for field, order := range idx.Indexes {
		keys = append(keys, bson.E{Key: field, Value: order})
	}
	// "_id" is always the suffix of compound indexes so ordering stays stable
	sortIndexKeys(keys)

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}
	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Index created")
	return nil
}

func sortIndexKeys(keys bson.D) {
	for i := 0; i < len(keys); i++ {
		if keys[i].Key == "_id" && i != len(keys)-1 {
			keys[i], keys[len(keys)-1] = keys[len(keys)-1], keys[i]
			return
		}
	}
}
