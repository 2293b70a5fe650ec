package domain

import "time"

// DailyLog is the closed snapshot of one day. Written once at close.
type DailyLog struct {
	Date        string      `json:"date"`
	Meals       []Meal      `json:"meals"`
	HealthStats HealthStats `json:"healthStats"`
	BadgeDaily  Badge       `json:"badgeDaily"`
	TotalKcal   int         `json:"totalKcal"`
	ClosedAt    time.Time   `json:"closedAt"`
}

// DayProgress accumulates the open day until it is closed
type DayProgress struct {
	Date        string       `json:"date"`
	Meals       []Meal       `json:"meals"`
	HealthStats *HealthStats `json:"healthStats,omitempty"`
	SyncedSteps int          `json:"syncedSteps"`
}

// NewDayProgress opens an empty day for the calendar date of t
func NewDayProgress(t time.Time) DayProgress {
	return DayProgress{Date: t.Format(DateLayout), Meals: []Meal{}}
}

// Clone returns a deep copy
func (d DayProgress) Clone() DayProgress {
	d.Meals = cloneMeals(d.Meals)
	if d.HealthStats != nil {
		hs := d.HealthStats.Clone()
		d.HealthStats = &hs
	}
	return d
}

// Stats returns the synced stats or a zero value when none were synced
func (d DayProgress) Stats() HealthStats {
	if d.HealthStats == nil {
		return HealthStats{}
	}
	return d.HealthStats.Clone()
}

// Clone returns a deep copy
func (l DailyLog) Clone() DailyLog {
	l.Meals = cloneMeals(l.Meals)
	l.HealthStats = l.HealthStats.Clone()
	return l
}
