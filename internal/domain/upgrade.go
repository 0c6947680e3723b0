package domain

// EffectType - что именно усиливает улучшение
type EffectType string

const (
	EffectTapReward  EffectType = "tap_reward"
	EffectAFKReward  EffectType = "afk_reward"
	EffectExperience EffectType = "experience"
)

// Upgrade is a purchasable leveled modifier. Upgrade rows are shared by all
// users: one purchase raises the level for everyone.
type Upgrade struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	EffectType  EffectType `db:"effect_type" json:"effect_type"`
	EffectValue float64    `db:"effect_value" json:"effect_value"`
	Level       int        `db:"level" json:"level"`
	MaxLevel    int        `db:"max_level" json:"max_level"`
	BaseCost    float64    `db:"base_cost" json:"base_cost"`
	// Cost is the price paid on the most recent purchase, kept for display.
	// The authoritative price is always recomputed from BaseCost and Level.
	Cost float64 `db:"cost" json:"cost"`
}
