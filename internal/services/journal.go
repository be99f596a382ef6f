package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/observability/metrics"
)

type undoStep struct {
	name string
	undo func(ctx context.Context) error
}

// journal records how to revert every registry call made by a stake or unstake
// call so a failure halfway leaves the registries as they were.
type journal struct {
	steps []undoStep
}

func (j *journal) record(name string, undo func(ctx context.Context) error) {
	j.steps = append(j.steps, undoStep{name: name, undo: undo})
}

// rollback runs the recorded steps newest first. A failing step is logged and
// counted, the remaining steps still run.
func (j *journal) rollback(ctx context.Context) {
	// the caller's context may already be cancelled
	ctx = context.WithoutCancel(ctx)

	for i := len(j.steps) - 1; i >= 0; i-- {
		step := j.steps[i]
		if err := step.undo(ctx); err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Str("step", step.name).
				Msg("rollback step failed, registry state may be inconsistent")
			metrics.IncRollbackFailures(step.name)
		}
	}
	j.steps = nil
}
