package planner

import (
	"math"
	"strings"
	"time"
)

// activityMultipliers is evaluated in order; the first substring match of
// the profile's activity level wins, with a sedentary default.
var activityMultipliers = []struct {
	keyword    string
	multiplier float64
}{
	{"lightly", 1.375},
	{"moderate", 1.55},
	{"very", 1.725},
	{"extra", 1.9},
}

const sedentaryMultiplier = 1.2

// goalNutrition holds the goal-keyed calorie adjustment, macro multipliers
// and base meal count.
type goalNutrition struct {
	calorieFactor float64
	proteinPerKg  float64
	fatPerKg      float64
	mealsPerDay   int
}

// AgeAt returns the age in whole years at the given instant.
func AgeAt(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// BMR computes the basal metabolic rate via the Mifflin-St Jeor formula.
// Any gender other than "male" (case-insensitive) uses the female branch.
func BMR(profile Profile) float64 {
	base := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.AgeYears)
	if strings.EqualFold(profile.Gender, "male") {
		return base + 5
	}
	return base - 161
}

// Nutrition computes daily calories, macro grams and meal count for the
// profile. Deterministic: two calls with the same profile yield identical
// numbers.
func Nutrition(profile Profile) NutritionTargets {
	multiplier := sedentaryMultiplier
	for _, entry := range activityMultipliers {
		if strings.Contains(profile.ActivityLevel, entry.keyword) {
			multiplier = entry.multiplier
			break
		}
	}
	tdee := math.Round(BMR(profile) * multiplier)

	adjust := goalAdjustment(profile.Goal)
	dailyCalories := int(math.Round(tdee * adjust.calorieFactor))

	proteinGrams := int(math.Round(profile.WeightKg * adjust.proteinPerKg))
	fatGrams := int(math.Round(profile.WeightKg * adjust.fatPerKg))

	// Remaining calories go to carbs at 4 kcal/g, floored at 20 g to
	// guard against degenerate low-calorie results.
	remaining := float64(dailyCalories - proteinGrams*4 - fatGrams*9)
	carbsGrams := int(math.Round(remaining / 4))
	if carbsGrams < 20 {
		carbsGrams = 20
	}

	mealsPerDay := adjust.mealsPerDay
	switch profile.Experience {
	case "beginner":
		if mealsPerDay > 4 {
			mealsPerDay = 4
		}
	case "advanced":
		if mealsPerDay < 4 {
			mealsPerDay = 4
		}
	}

	return NutritionTargets{
		DailyCalories: dailyCalories,
		ProteinGrams:  proteinGrams,
		CarbsGrams:    carbsGrams,
		FatGrams:      fatGrams,
		MealsPerDay:   mealsPerDay,
	}
}

// goalAdjustment applies the goal cascade. Strength is checked before
// endurance, matching the ordering used across the engine.
func goalAdjustment(goal string) goalNutrition {
	switch {
	case goal == "weight_loss":
		return goalNutrition{calorieFactor: 0.8, proteinPerKg: 2.0, fatPerKg: 0.8, mealsPerDay: 4}
	case goal == "muscle_gain":
		return goalNutrition{calorieFactor: 1.1, proteinPerKg: 2.2, fatPerKg: 1.0, mealsPerDay: 5}
	case strings.Contains(goal, "strength"):
		return goalNutrition{calorieFactor: 1.15, proteinPerKg: 2.0, fatPerKg: 1.0, mealsPerDay: 5}
	case strings.Contains(goal, "endurance"):
		return goalNutrition{calorieFactor: 1.05, proteinPerKg: 1.6, fatPerKg: 0.8, mealsPerDay: 5}
	}
	return goalNutrition{calorieFactor: 1.0, proteinPerKg: 1.6, fatPerKg: 0.8, mealsPerDay: 3}
}
