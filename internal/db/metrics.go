package db

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

var _ DbInterface = (*DbWithMetrics)(nil)

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveChangeset(ctx context.Context, cs *types.Changeset) error {
	return d.run("SaveChangeset", func() error {
		return d.db.SaveChangeset(ctx, cs)
	})
}

func (d *DbWithMetrics) GetChangesets(ctx context.Context, afterSequence uint64, limit int64) (result []*types.Changeset, err error) {
	//nolint:errcheck
	d.run("GetChangesets", func() error {
		result, err = d.db.GetChangesets(ctx, afterSequence, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) GetChangesetsByCaller(ctx context.Context, caller common.Address) (result []*types.Changeset, err error) {
	//nolint:errcheck
	d.run("GetChangesetsByCaller", func() error {
		result, err = d.db.GetChangesetsByCaller(ctx, caller)
		return err
	})
	return
}

func (d *DbWithMetrics) GetLastSequence(ctx context.Context) (result uint64, err error) {
	//nolint:errcheck
	d.run("GetLastSequence", func() error {
		result, err = d.db.GetLastSequence(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertLedgerStats(ctx context.Context, stats *LedgerStats) error {
	return d.run("UpsertLedgerStats", func() error {
		return d.db.UpsertLedgerStats(ctx, stats)
	})
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
