package services

import (
	"github.com/Cyrus-spc-tech/Pal-Ai/utils"
)

// MacroSummary is the fixed-shape macro record stored with food activities.
// Fields the lookup never reported stay at zero.
type MacroSummary struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// CalorieFeedback buckets calorie intake against the daily goal.
type CalorieFeedback string

const (
	FeedbackPlentyLeft  CalorieFeedback = "plenty_left"
	FeedbackAlmostThere CalorieFeedback = "almost_there"
	FeedbackOnTarget    CalorieFeedback = "on_target"
	FeedbackOverBudget  CalorieFeedback = "over_budget"
)

// AggregateFoodMacros sums macros across food logs, rounded to one decimal
// place. Entries without nutrition data contribute zeros.
func AggregateFoodMacros(logs []FoodLog) MacroSummary {
	var total MacroSummary
	for _, l := range logs {
		total.Calories += l.Nutrition.Calories
		total.ProteinG += l.Nutrition.ProteinG
		total.CarbsG += l.Nutrition.CarbsG
		total.FatG += l.Nutrition.FatG
	}
	total.Calories = utils.Round1(total.Calories)
	total.ProteinG = utils.Round1(total.ProteinG)
	total.CarbsG = utils.Round1(total.CarbsG)
	total.FatG = utils.Round1(total.FatG)
	return total
}

// Feedback classifies total intake relative to the daily goal:
// more than 500 kcal of headroom, up to 500 left, on target within a
// 200 kcal overshoot, or over budget beyond that.
func Feedback(totalCalories, dailyGoal float64) CalorieFeedback {
	diff := dailyGoal - totalCalories
	switch {
	case diff > 500:
		return FeedbackPlentyLeft
	case diff > 0:
		return FeedbackAlmostThere
	case diff > -200:
		return FeedbackOnTarget
	default:
		return FeedbackOverBudget
	}
}
