package engine

import (
	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// EvaluateMeals totals the day's calories, picks the badge and sums the quality XP.
// An empty day yields zero calories and the maitreDesCalories badge.
func EvaluateMeals(meals []domain.Meal) domain.MealEvaluation {
	eval := domain.MealEvaluation{}
	for _, m := range meals {
		eval.TotalKcal += m.KcalEstimate
		switch m.Quality {
		case domain.MealHealthy:
			eval.QualityXPDelta += MealHealthyXP
		case domain.MealJunk:
			eval.QualityXPDelta += MealJunkXP
		}
	}
	eval.BadgeDaily = BadgeFor(eval.TotalKcal)
	return eval
}

// BadgeFor maps a calorie total to its daily badge
func BadgeFor(totalKcal int) domain.Badge {
	switch {
	case totalKcal < domain.BadgeEquilibristMinKcal:
		return domain.BadgeMaitreDesCalories
	case totalKcal <= domain.BadgeEquilibristMaxKcal:
		return domain.BadgeEquilibrist
	default:
		return domain.BadgeGourmand
	}
}

// ApplyHealthStats scores a day of activity. Each rule contributes independently;
// opposite branches of the same metric are mutually exclusive and the band between
// them contributes nothing.
func (e *Engine) ApplyHealthStats(stats domain.HealthStats) domain.Deltas {
	d := domain.Deltas{Loot: []domain.Item{}}

	if stats.Steps > StepsHighThreshold {
		d.XPDelta += StepsHighXP
		d.Loot = append(d.Loot, e.newItem(domain.LootPotion, domain.ItemKindArtifact, 0))
	} else if stats.Steps < StepsLowThreshold {
		d.XPDelta += StepsLowXP
		d.HPDelta += StepsLowHP
	}

	if stats.Floors > FloorsThreshold {
		d.Loot = append(d.Loot, e.newItem(domain.LootLightCape, domain.ItemKindCape, domain.LootTTL))
	}

	if stats.ActiveKcal > ActiveKcalHighThreshold {
		d.Loot = append(d.Loot, e.newItem(domain.LootFlamingSword, domain.ItemKindWeapon, domain.LootTTL))
	} else if stats.ActiveKcal < ActiveKcalLowThreshold {
		d.XPDelta += ActiveKcalLowXP
	}

	if stats.ExerciseMinutes > ExerciseMinutesThreshold {
		d.XPDelta += ExerciseXP
	}

	if stats.SleepHours > SleepHighThreshold {
		d.HPDelta += SleepHighHP
		d.Loot = append(d.Loot, e.newItem(domain.LootSleepPotion, domain.ItemKindArtifact, 0))
	} else if stats.SleepHours < SleepLowThreshold {
		d.HPDelta += SleepLowHP
		d.XPDelta += SleepLowXP
	}

	// flat, never accumulated
	if stats.HydrationLiters >= HydrationThreshold {
		d.BossDamagePercent = HydrationDamage
	}

	return d
}
