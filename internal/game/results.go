package game

import (
	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/engine"
)

// SyncResult is the outcome of a health sync
type SyncResult struct {
	Stats      domain.HealthStats `json:"healthStats"`
	StepsAdded int                `json:"stepsAdded"`
	Unlocked   []string           `json:"unlocked"`
	Journey    domain.Journey     `json:"journey"`
}

// ExploreResult is the outcome of one exploration
type ExploreResult struct {
	Outcome engine.ExploreOutcome `json:"outcome"`
	Avatar  domain.Avatar         `json:"avatar"`
	Journey domain.Journey        `json:"journey"`
}

// DayCloseResult is the outcome of closing a day
type DayCloseResult struct {
	Log         domain.DailyLog       `json:"log"`
	Evaluation  domain.MealEvaluation `json:"evaluation"`
	Deltas      domain.Deltas         `json:"deltas"`
	LevelUp     bool                  `json:"levelUp"`
	BossVictory bool                  `json:"bossVictory"`
	BossDefeat  bool                  `json:"bossDefeat"`
	ReportPath  string                `json:"reportPath,omitempty"`
	State       domain.AppState       `json:"state"`
}
