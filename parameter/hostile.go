package parameter

import "time"

// Spawning
const (
	// HostileSpawnMinDistance is the nearest a regular hostile appears from the player
	HostileSpawnMinDistance = 15.0

	// HostileSpawnDistanceJitter is added on top of the minimum spawn distance
	HostileSpawnDistanceJitter = 5.0

	// BossSpawnDistance is the fixed boss spawn distance from the player
	BossSpawnDistance = 20.0

	// HostileSpawnHeight is the y coordinate of every spawned hostile
	HostileSpawnHeight = 1.0

	// BossKillThreshold spawns a boss whenever the kill counter is a nonzero multiple of it
	BossKillThreshold = 10
)

// Stats
const (
	BossHealth   = 10
	RegularScale = 1.0
	BossScale    = 2.5
)

// Steering
const (
	// RegularChaseSpeed is the target speed a regular blends toward
	RegularChaseSpeed = 0.5

	// RegularSteerFactor is the per-tick blend factor for regular velocity
	RegularSteerFactor = 0.1

	// RegularJitter is the width of the uniform per-axis noise added to regular steering
	RegularJitter = 0.2

	// BossChaseSpeed is the target speed the boss blends toward
	BossChaseSpeed = 0.8

	// BossSteerFactor is the per-tick blend factor for boss velocity
	BossSteerFactor = 0.15

	// BossChargeChance is the per-tick probability of a boss charge
	BossChargeChance = 0.02

	// BossChargeMultiplier scales boss velocity on charge
	BossChargeMultiplier = 2.0

	// HostileMoveScale multiplies velocity*dt when integrating position
	HostileMoveScale = 2.0
)

// Contact
const (
	RegularContactRadius = 1.5
	RegularContactDamage = 10.0
	BossContactRadius    = 2.0
	BossContactDamage    = 25.0
)

// Hit Bodies
const (
	// RegularHitRadius is the point-distance tolerance for hitting a regular
	RegularHitRadius = 0.5

	// BossHitRadius is the point-distance tolerance for hitting the boss
	BossHitRadius = 1.0

	// HitDamage is the damage applied by every successful hit
	HitDamage = 1
)

// Decay
const (
	// BurstParticleCount is the number of particles in one decay burst
	BurstParticleCount = 20

	// BurstSpread is the cube edge of random particle offsets around the burst origin
	BurstSpread = 0.3

	// BurstFallPerTick is how far each particle drops per tick while dying
	BurstFallPerTick = 0.1

	// BurstFloor is the height below which a burst is discarded
	BurstFloor = -2.0

	RegularDeathBursts = 3
	BossDeathBursts    = 9

	RegularDeathDelay = 2 * time.Second
	BossDeathDelay    = 3 * time.Second
)

// Boss Rage
const (
	// BossRageScale is the temporary scale multiplier applied when the boss survives a hit
	BossRageScale = 1.1

	// BossRageDuration is how long the rage scale lasts
	BossRageDuration = 200 * time.Millisecond
)
