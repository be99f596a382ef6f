package db

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/babylonlabs-io/nft-staker/internal/config"
)

type Database struct {
	dbName string
	client *mongo.Client
}

var _ DbInterface = (*Database)(nil)

// New connects to mongo and waits until the server answers a ping, retrying
// up to cfg.MaxRetryTimes.
func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	db := &Database{
		dbName: cfg.DbName,
		client: client,
	}

	attempts := cfg.MaxRetryTimes
	if attempts == 0 {
		attempts = 1
	}
	err = retry.Do(
		func() error {
			return db.Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Uint("attempt", n+1).
				Uint("max_attempts", attempts).
				Err(err).
				Msg("mongo is not reachable yet, retrying")
		}),
	)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return db, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

func (db *Database) Disconnect(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.client.Database(db.dbName).Collection(name)
}

// Drop removes the whole database. Used by integration tests.
func (db *Database) Drop(ctx context.Context) error {
	return db.client.Database(db.dbName).Drop(ctx)
}
