package queue_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staker/internal/queue"
	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/testutil"
)

func TestNewLedgerEvent(t *testing.T) {
	caller := testutil.RandomAddress()
	cs := &types.Changeset{
		Sequence:  7,
		Operation: types.OperationUnstake,
		Caller:    caller,
		Timestamp: time.Unix(1_700_000_000, 0).UTC(),
		Unstaked:  []types.StakeRecord{testutil.RandomStakeRecord(caller, "quirkies")},
		Rewarded:  []uint64{1},
	}

	event := queue.NewLedgerEvent(cs)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, uint64(7), event.Sequence)
	assert.Equal(t, "unstake", event.Operation)
	assert.Equal(t, caller.Hex(), event.Caller)
	assert.Equal(t, int64(1_700_000_000), event.Timestamp)

	other := queue.NewLedgerEvent(cs)
	assert.NotEqual(t, event.EventID, other.EventID)

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "unstake", decoded["operation"])
	assert.Contains(t, decoded, "changeset")
}

func TestNoopPublisher(t *testing.T) {
	var p queue.Publisher = queue.NoopPublisher{}
	assert.NoError(t, p.PushLedgerEvent(context.Background(), &types.Changeset{}))
}
