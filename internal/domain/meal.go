package domain

import "time"

// MealQuality grades a single meal
type MealQuality string

const (
	MealHealthy MealQuality = "healthy"
	MealNeutral MealQuality = "neutral"
	MealJunk    MealQuality = "junk"
)

// Valid reports whether q is a known quality
func (q MealQuality) Valid() bool {
	switch q {
	case MealHealthy, MealNeutral, MealJunk:
		return true
	}
	return false
}

// Meal is one logged meal. Either PhotoRef or Text describes it.
type Meal struct {
	ID           string      `json:"id" validate:"required"`
	Time         time.Time   `json:"time"`
	PhotoRef     *string     `json:"photoLocalURL,omitempty"`
	Text         *string     `json:"text,omitempty"`
	KcalEstimate int         `json:"kcalEstimate" validate:"min=0"`
	Quality      MealQuality `json:"quality" validate:"oneof=healthy neutral junk"`
}

// MealInput is what a caller submits before analysis. Quality is a caller-side
// grade that the passthrough analyzer keeps; the keyword heuristic overrides it.
type MealInput struct {
	PhotoRef     *string      `json:"photoLocalURL,omitempty"`
	Text         *string      `json:"text,omitempty" validate:"omitempty,max=500"`
	KcalEstimate int          `json:"kcalEstimate" validate:"min=0,max=20000"`
	Quality      *MealQuality `json:"quality,omitempty" validate:"omitempty,oneof=healthy neutral junk"`
}

// MealAnalysis is the analyzer's verdict on a meal
type MealAnalysis struct {
	Kcal    int         `json:"kcal"`
	Quality MealQuality `json:"quality"`
}

// Badge is the daily calorie label
type Badge string

const (
	BadgeMaitreDesCalories Badge = "maitreDesCalories"
	BadgeEquilibrist       Badge = "equilibrist"
	BadgeGourmand          Badge = "gourmand"
)

// Calorie bands for the daily badge. Both bounds are inclusive in the middle band.
const (
	BadgeEquilibristMinKcal = 1650
	BadgeEquilibristMaxKcal = 1800
)

// MealEvaluation summarises a day's meals
type MealEvaluation struct {
	TotalKcal      int   `json:"totalKcal"`
	BadgeDaily     Badge `json:"badgeDaily"`
	QualityXPDelta int   `json:"qualityXPDelta"`
}

func cloneMeals(meals []Meal) []Meal {
	out := make([]Meal, len(meals))
	for i, m := range meals {
		if m.PhotoRef != nil {
			v := *m.PhotoRef
			m.PhotoRef = &v
		}
		if m.Text != nil {
			v := *m.Text
			m.Text = &v
		}
		out[i] = m
	}
	return out
}
