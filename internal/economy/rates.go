package economy

import (
	"sync"
	"time"
)

// Константы экономики
const (
	// BaseTapReward is the starting reward for a single tap.
	BaseTapReward = 0.01

	// TapCooldown is the minimum interval between taps.
	TapCooldown = 1 * time.Second

	// AFKHourlyRate is the flat passive income per hour before multipliers.
	AFKHourlyRate = 10.0

	// LevelExpStep scales the experience required per level: level * 100.
	LevelExpStep = 100

	// LevelRewardBonus is the extra tap reward per user level above 1.
	LevelRewardBonus = 0.1

	// CostGrowthFactor raises an upgrade's price with each level.
	CostGrowthFactor = 1.5
)

// Rates holds the process-wide mutable economy baselines. The tap baseline
// compounds every time anyone buys the tap upgrade, so it is owned here
// behind a lock instead of living in a bare package variable.
type Rates struct {
	mu        sync.RWMutex
	tapReward float64
}

func NewRates() *Rates {
	return &Rates{tapReward: BaseTapReward}
}

// TapReward returns the current tap baseline.
func (r *Rates) TapReward() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tapReward
}

// ScaleTapReward multiplies the tap baseline by factor. Used by the
// tap_reward upgrade side effect; the growth is cumulative and process-wide.
func (r *Rates) ScaleTapReward(factor float64) {
	r.mu.Lock()
	r.tapReward *= factor
	r.mu.Unlock()
}
