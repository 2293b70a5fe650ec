package engine

// Health thresholds. Comparisons are strict unless noted.
const (
	StepsHighThreshold       = 10000
	StepsLowThreshold        = 3000
	FloorsThreshold          = 10
	ActiveKcalHighThreshold  = 500
	ActiveKcalLowThreshold   = 200
	ExerciseMinutesThreshold = 30
	SleepHighThreshold       = 8.0
	SleepLowThreshold        = 6.0
	HydrationThreshold       = 1.0 // inclusive
)

// Health rewards and penalties
const (
	StepsHighXP     = 50
	StepsLowXP      = -25
	StepsLowHP      = -5
	ActiveKcalLowXP = -10
	ExerciseXP      = 100
	SleepHighHP     = 10
	SleepLowHP      = -10
	SleepLowXP      = -20
	HydrationDamage = 0.2
	MealHealthyXP   = 10
	MealJunkXP      = -10
)

// Boss fight
const (
	BossDamagePerSuccess = 0.2
	BossVictoryXP        = 500
	BossDefeatXP         = -200
)

// Exploration
const (
	ExploreXP            = 50
	ExploreAmbushHP      = 10
	ExploreShortcutSteps = 1000
)

// ExploreOutcome names what an exploration produced
type ExploreOutcome string

const (
	ExploreNone     ExploreOutcome = "none"
	ExploreXPGain   ExploreOutcome = "xp"
	ExploreAmbush   ExploreOutcome = "ambush"
	ExploreWeapon   ExploreOutcome = "weapon"
	ExploreShortcut ExploreOutcome = "shortcut"
)

// exploreOutcomes is indexed by the random draw
var exploreOutcomes = [...]ExploreOutcome{ExploreXPGain, ExploreAmbush, ExploreWeapon, ExploreShortcut}

// hpDecimals rounds boss health so repeated 0.2 steps land exactly on zero
const hpDecimals = 6
