package parameter

// Kill Rewards
const (
	RegularKillScore = 10
	RegularKillCoins = 5
	RegularKillXP    = 10

	BossKillScore = 100
	BossKillCoins = 50
	BossKillXP    = 50
)

// Leveling
const (
	// StartingXPToNext is the xp required for the first level-up
	StartingXPToNext = 100

	// XPGrowth multiplies the xp requirement after each level-up (floored)
	XPGrowth = 1.5
)
