package domain

// HealthStats is one day of activity data from the health provider
type HealthStats struct {
	Steps           int      `json:"steps" yaml:"steps" validate:"min=0"`
	Floors          int      `json:"floors" yaml:"floors" validate:"min=0"`
	ActiveKcal      int      `json:"activeKcal" yaml:"activeKcal" validate:"min=0"`
	ExerciseMinutes int      `json:"exerciseMinutes" yaml:"exerciseMinutes" validate:"min=0"`
	SleepHours      float64  `json:"sleepHours" yaml:"sleepHours" validate:"gte=0"`
	HydrationLiters float64  `json:"hydrationLiters" yaml:"hydrationLiters" validate:"gte=0"`
	HeartRateAvg    *float64 `json:"heartRateAvg,omitempty" yaml:"heartRateAvg,omitempty"`
}

// Clone returns a copy that shares no pointers with s
func (s HealthStats) Clone() HealthStats {
	if s.HeartRateAvg != nil {
		v := *s.HeartRateAvg
		s.HeartRateAvg = &v
	}
	return s
}

// Deltas are the scoring output of a day's health stats. Never persisted on their own.
type Deltas struct {
	XPDelta           int     `json:"xpDelta"`
	HPDelta           int     `json:"hpDelta"`
	BossDamagePercent float64 `json:"bossDamagePercent"`
	Loot              []Item  `json:"loot"`
}
