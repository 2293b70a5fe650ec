package engine

import (
	"fmt"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/utils"
)

// BossResult reports what UpdateBossProgress did
type BossResult struct {
	Victory bool
	Defeat  bool
}

// UpdateBossProgress applies one day's boss outcome. A success deals a fixed share of
// damage; reaching zero is a victory that grants XP and resets the boss in the same call.
// A failure costs XP.
func UpdateBossProgress(state domain.AppState, success bool) (domain.AppState, BossResult) {
	next := state.Clone()
	if !success {
		next.Avatar.XP += BossDefeatXP
		return next, BossResult{Defeat: true}
	}

	hp := utils.RoundTo(next.Boss.HPPercent-BossDamagePerSuccess, hpDecimals)
	if hp > 0 {
		next.Boss.HPPercent = utils.Clamp(hp, 0, 1.0)
		return next, BossResult{}
	}

	next.Avatar.XP += BossVictoryXP
	next.Boss.HPPercent = 1.0
	return next, BossResult{Victory: true}
}

// AdvanceJourney adds steps to the journey and unlocks every destination the new total
// reaches, including steps banked earlier by an exploration shortcut. It returns the
// destinations unlocked by this call, in order. On return StepsToday < DistanceToNext.
func AdvanceJourney(state domain.AppState, steps int) (domain.AppState, []string) {
	next := state.Clone()
	j := &next.Journey
	j.StepsToday += steps
	j.AccumulatedSteps += steps

	if j.DistanceToNext <= 0 {
		// a zero distance would never terminate
		j.DistanceToNext = domain.DefaultDistanceToNext
	}

	var unlocked []string
	for j.StepsToday >= j.DistanceToNext {
		j.StepsToday -= j.DistanceToNext
		j.Unlocked = append(j.Unlocked, j.CurrentDestination)
		unlocked = append(unlocked, j.CurrentDestination)
		j.CurrentDestination = fmt.Sprintf("%s%d", domain.DestinationPrefix, len(j.Unlocked)+1)
		j.Environment = environmentFor(len(j.Unlocked))
	}
	return next, unlocked
}

func environmentFor(unlockedCount int) string {
	if unlockedCount%2 == 0 {
		return domain.EnvironmentMistForest
	}
	return domain.EnvironmentTowerCity
}

// Explore resolves one exploration. Without a healthy choice nothing happens. Otherwise one
// of four outcomes is drawn uniformly: bonus XP, an ambush costing HP, a weapon, or a
// shortcut adding bonus steps to today's progress. A shortcut may leave StepsToday at or
// above DistanceToNext and does not count toward AccumulatedSteps.
func (e *Engine) Explore(state domain.AppState, choiceHealthy bool) (domain.AppState, ExploreOutcome) {
	if !choiceHealthy {
		return state.Clone(), ExploreNone
	}

	draw := e.intn(len(exploreOutcomes))
	if draw < 0 || draw >= len(exploreOutcomes) {
		draw = 0
	}
	outcome := exploreOutcomes[draw]

	next := state.Clone()
	switch outcome {
	case ExploreXPGain:
		next.Avatar.XP += ExploreXP
	case ExploreAmbush:
		next.Avatar.HPCurrent = max(0, next.Avatar.HPCurrent-ExploreAmbushHP)
	case ExploreWeapon:
		next.Avatar.Inventory.Add(e.newItem(domain.LootSwiftDagger, domain.ItemKindWeapon, 0))
	case ExploreShortcut:
		// banked on today's progress only; the next AdvanceJourney settles any unlock
		next.Journey.StepsToday += ExploreShortcutSteps
	}
	return next, outcome
}

// TickDailyClose closes the day: a single level-up when XP reaches level*500, then the
// daily steps reset. It reports whether the avatar levelled up.
func TickDailyClose(state domain.AppState) (domain.AppState, bool) {
	next := state.Clone()
	levelUp := false
	if next.Avatar.XP >= next.Avatar.XPForNextLevel() {
		next.Avatar.Level++
		next.Avatar.HPMax += domain.LevelUpHPMaxBonus
		next.Avatar.HPCurrent = next.Avatar.HPMax
		levelUp = true
	}
	next.Journey.StepsToday = 0
	return next, levelUp
}

// ApplyDeltas folds health deltas into the avatar. HP is clamped to [0, HPMax] and loot
// is routed to the matching inventory sequence. Boss damage is left to UpdateBossProgress.
func ApplyDeltas(state domain.AppState, d domain.Deltas) domain.AppState {
	next := state.Clone()
	next.Avatar.XP += d.XPDelta
	next.Avatar.HPCurrent = utils.Clamp(next.Avatar.HPCurrent+d.HPDelta, 0, max(0, next.Avatar.HPMax))
	for _, item := range d.Loot {
		next.Avatar.Inventory.Add(item)
	}
	return next
}

// ApplyMealEvaluation adds the meal quality XP and updates the streak. Any badge other
// than gourmand extends the streak; gourmand resets it.
func ApplyMealEvaluation(state domain.AppState, eval domain.MealEvaluation) domain.AppState {
	next := state.Clone()
	next.Avatar.XP += eval.QualityXPDelta
	if eval.BadgeDaily == domain.BadgeGourmand {
		next.Avatar.Streak = 0
	} else {
		next.Avatar.Streak++
	}
	return next
}
