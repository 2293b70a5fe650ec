// Package analyzer estimates calories and quality for logged meals
package analyzer

import (
	"context"
	"strings"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// Analyzer grades a meal
type Analyzer interface {
	Analyze(ctx context.Context, meal domain.Meal) domain.MealAnalysis
}

// Heuristic keyword tables
var (
	healthyKeywords = []string{"salade", "salad", "fruits"}
	junkKeywords    = []string{"burger", "pizza"}
)

const (
	HealthyKcal = 300
	JunkKcal    = 900
	DefaultKcal = 600
)

// HeuristicAnalyzer works offline from keywords in the meal text
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer creates the offline analyzer
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// Analyze checks healthy keywords first, then junk ones. Without a match the meal is
// neutral and keeps its own estimate, or DefaultKcal when it has none.
func (HeuristicAnalyzer) Analyze(_ context.Context, meal domain.Meal) domain.MealAnalysis {
	if meal.Text != nil {
		text := strings.ToLower(*meal.Text)
		if containsAny(text, healthyKeywords) {
			return domain.MealAnalysis{Kcal: HealthyKcal, Quality: domain.MealHealthy}
		}
		if containsAny(text, junkKeywords) {
			return domain.MealAnalysis{Kcal: JunkKcal, Quality: domain.MealJunk}
		}
	}

	kcal := meal.KcalEstimate
	if kcal <= 0 {
		kcal = DefaultKcal
	}
	return domain.MealAnalysis{Kcal: kcal, Quality: domain.MealNeutral}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// PassthroughAnalyzer occupies the cloud analyzer slot. It trusts the meal's own values.
type PassthroughAnalyzer struct{}

func (PassthroughAnalyzer) Analyze(_ context.Context, meal domain.Meal) domain.MealAnalysis {
	quality := meal.Quality
	if !quality.Valid() {
		quality = domain.MealNeutral
	}
	return domain.MealAnalysis{Kcal: max(0, meal.KcalEstimate), Quality: quality}
}

// ForSettings picks the analyzer the user selected
func ForSettings(s domain.Settings) Analyzer {
	if s.UseOpenAIAnalyzer {
		return PassthroughAnalyzer{}
	}
	return HeuristicAnalyzer{}
}
