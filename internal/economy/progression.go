package economy

// TapMultiplier converts the global tap upgrade into a reward multiplier.
// With no upgrade purchased (level 0) the multiplier is exactly 1.0.
func TapMultiplier(upgradeLevel int, effectValue float64) float64 {
	return 1 + float64(upgradeLevel)*effectValue
}

// TapReward computes the reward for one tap:
// baseline * upgrade multiplier * level bonus. At level 1 the bonus factor
// is exactly 1.0.
func TapReward(baseline, tapMultiplier float64, userLevel int) float64 {
	return baseline * tapMultiplier * (1 + float64(userLevel-1)*LevelRewardBonus)
}

// NextLevelExp returns the experience threshold for leaving the given level.
func NextLevelExp(level int) int {
	return level * LevelExpStep
}

// ApplyExperience adds gained experience and resolves a level-up. Experience
// resets to zero on level-up; excess over the threshold is discarded, not
// carried over.
func ApplyExperience(level, experience, gained int) (newLevel, newExperience int, leveledUp bool) {
	newLevel = level
	newExperience = experience + gained
	if newExperience >= NextLevelExp(level) {
		newLevel++
		newExperience = 0
		leveledUp = true
	}
	return newLevel, newExperience, leveledUp
}

// Progress returns current/target as a percentage, uncapped.
func Progress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target * 100
}
