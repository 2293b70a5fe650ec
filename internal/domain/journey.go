package domain

// Journey tracks distance toward the next destination.
// StepsToday holds the progress carried toward DistanceToNext and is reset at daily close;
// AccumulatedSteps only ever grows. Unlocked is append-only history.
type Journey struct {
	Environment        string   `json:"environment"`
	StepsToday         int      `json:"stepsToday" validate:"min=0"`
	AccumulatedSteps   int      `json:"accumulatedSteps" validate:"min=0"`
	DistanceToNext     int      `json:"distanceToNext" validate:"gt=0"`
	CurrentDestination string   `json:"currentDestination"`
	Unlocked           []string `json:"unlocked"`
}

// DefaultJourney returns the journey at its first leg
func DefaultJourney() Journey {
	return Journey{
		Environment:        EnvironmentMistForest,
		StepsToday:         0,
		AccumulatedSteps:   0,
		DistanceToNext:     DefaultDistanceToNext,
		CurrentDestination: DefaultFirstDestination,
		Unlocked:           []string{},
	}
}

// Clone returns a deep copy
func (j Journey) Clone() Journey {
	j.Unlocked = append(make([]string, 0, len(j.Unlocked)), j.Unlocked...)
	return j
}
