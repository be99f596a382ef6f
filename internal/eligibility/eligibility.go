// Package eligibility decides whether a stake has been held long enough to
// earn its reward.
package eligibility

import "time"

// DefaultRewardThreshold is the minimum holding duration used when none is configured.
const DefaultRewardThreshold = 30 * 24 * time.Hour

type Clock struct {
	threshold time.Duration
}

func NewClock(threshold time.Duration) *Clock {
	return &Clock{threshold: threshold}
}

func (c *Clock) Threshold() time.Duration {
	return c.threshold
}

// IsEligible is true iff now - stakedAt >= threshold.
func (c *Clock) IsEligible(stakedAt, now time.Time) bool {
	return now.Sub(stakedAt) >= c.threshold
}

// EligibleAt returns the first instant at which a stake made at stakedAt earns the reward.
func (c *Clock) EligibleAt(stakedAt time.Time) time.Time {
	return stakedAt.Add(c.threshold)
}

// Remaining returns how long the stake still has to be held, zero once eligible.
func (c *Clock) Remaining(stakedAt, now time.Time) time.Duration {
	left := c.EligibleAt(stakedAt).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
