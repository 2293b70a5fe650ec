package domain

import "time"

// Avatar progression
const (
	DefaultAvatarLevel = 1
	DefaultAvatarHP    = 100
	XPPerLevel         = 500
	LevelUpHPMaxBonus  = 20
)

// Boss defaults
const (
	DefaultBossName      = "Squelette Maudit"
	DefaultBossObjective = "Drink 1L of water"
)

// Journey environments alternate on the parity of the unlocked count
const (
	EnvironmentMistForest   = "Forêt des Brumes"
	EnvironmentTowerCity    = "Cité Médiévale des Mille Tours"
	DestinationPrefix       = "Destination #"
	DefaultDistanceToNext   = 5000
	DefaultFirstDestination = EnvironmentTowerCity
)

// Settings defaults and bounds
const (
	DefaultStorageQuotaMB = 50
	DefaultKeepDaysMin    = 30
	MinStorageQuotaMB     = 25
	MaxStorageQuotaMB     = 500
	StorageQuotaStepMB    = 25
	BytesPerMB            = 1024 * 1024
)

// Loot item names
const (
	LootPotion       = "Potion"
	LootLightCape    = "Cape légère"
	LootFlamingSword = "Épée flamboyante"
	LootSleepPotion  = "Potion de sommeil"
	LootSwiftDagger  = "Dague rapide"
)

// LootTTL is the lifetime of temporary loot
const LootTTL = 24 * time.Hour

// DateLayout is the calendar day format used for history keys
const DateLayout = "2006-01-02"

// CurrentSchemaVersion is the canonical record version written by this build
const CurrentSchemaVersion = 1
