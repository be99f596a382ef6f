package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	clock := NewClock(DefaultRewardThreshold)
	stakedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("before threshold", func(t *testing.T) {
		now := stakedAt.Add(10*24*time.Hour + 10*time.Second)
		assert.False(t, clock.IsEligible(stakedAt, now))
		assert.Equal(t, 20*24*time.Hour-10*time.Second, clock.Remaining(stakedAt, now))
	})
	t.Run("one nanosecond short", func(t *testing.T) {
		now := stakedAt.Add(DefaultRewardThreshold - time.Nanosecond)
		assert.False(t, clock.IsEligible(stakedAt, now))
	})
	t.Run("exactly at threshold", func(t *testing.T) {
		now := stakedAt.Add(DefaultRewardThreshold)
		assert.True(t, clock.IsEligible(stakedAt, now))
		assert.Zero(t, clock.Remaining(stakedAt, now))
		assert.Equal(t, now, clock.EligibleAt(stakedAt))
	})
	t.Run("after threshold", func(t *testing.T) {
		now := stakedAt.Add(30*24*time.Hour + 10*time.Second)
		assert.True(t, clock.IsEligible(stakedAt, now))
		assert.Zero(t, clock.Remaining(stakedAt, now))
	})
	t.Run("zero threshold", func(t *testing.T) {
		assert.True(t, NewClock(0).IsEligible(stakedAt, stakedAt))
	})
}
