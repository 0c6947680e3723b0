package economy

import "math"

// UpgradeCost returns the price of the next purchase for an upgrade at the
// given level: base_cost * 1.5^level.
func UpgradeCost(baseCost float64, level int) float64 {
	return baseCost * math.Pow(CostGrowthFactor, float64(level))
}

// EffectFactor converts an upgrade's effect value into the multiplicative
// factor applied on purchase (tap baseline or afk multiplier).
func EffectFactor(effectValue float64) float64 {
	return 1 + effectValue
}
