package domain

// Boss is the weekly adversary. HPPercent stays within [0,1]; a victory resets it to 1.
type Boss struct {
	Name           string  `json:"name"`
	HPPercent      float64 `json:"hpPercent" validate:"gte=0,lte=1"`
	DailyObjective string  `json:"dailyObjective"`
}

// DefaultBoss returns the starting boss at full health
func DefaultBoss() Boss {
	return Boss{
		Name:           DefaultBossName,
		HPPercent:      1.0,
		DailyObjective: DefaultBossObjective,
	}
}
