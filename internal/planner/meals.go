package planner

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const mealPlanDays = 7

// slotShare is one meal slot with its share of the daily totals.
type slotShare struct {
	slot    string
	percent int
}

// mealDistributions maps meals-per-day to the ordered slot percentages.
// Percentages within one day always sum to 100. Unknown counts fall back
// to the three-meal table.
var mealDistributions = map[int][]slotShare{
	3: {
		{"breakfast", 30},
		{"lunch", 40},
		{"dinner", 30},
	},
	4: {
		{"breakfast", 25},
		{"lunch", 30},
		{"snack", 15},
		{"dinner", 30},
	},
	5: {
		{"breakfast", 20},
		{"morning_snack", 10},
		{"lunch", 30},
		{"afternoon_snack", 10},
		{"dinner", 30},
	},
	6: {
		{"breakfast", 20},
		{"morning_snack", 10},
		{"lunch", 25},
		{"afternoon_snack", 10},
		{"dinner", 25},
		{"evening_snack", 10},
	},
}

// MealDistribution returns the slot percentage table for the given meal
// count.
func MealDistribution(mealsPerDay int) []slotShare {
	if dist, ok := mealDistributions[mealsPerDay]; ok {
		return dist
	}
	return mealDistributions[3]
}

// MealPlan distributes the daily targets across a 7-day cycle and
// instantiates templated meal content for every day and slot. Per-slot
// macros are rounded independently; small drift against the daily totals
// is accepted.
func (g *Generator) MealPlan(targets NutritionTargets, profile Profile) []Meal {
	distribution := MealDistribution(targets.MealsPerDay)
	meals := make([]Meal, 0, mealPlanDays*len(distribution))

	for day := 1; day <= mealPlanDays; day++ {
		for _, share := range distribution {
			fraction := float64(share.percent) / 100
			meal := Meal{
				Day:      day,
				Slot:     share.slot,
				Calories: int(math.Round(float64(targets.DailyCalories) * fraction)),
				Protein:  int(math.Round(float64(targets.ProteinGrams) * fraction)),
				Carbs:    int(math.Round(float64(targets.CarbsGrams) * fraction)),
				Fat:      int(math.Round(float64(targets.FatGrams) * fraction)),
			}
			g.fillMealContent(&meal, profile)
			meals = append(meals, meal)
		}
	}
	return meals
}

// fillMealContent picks a template for the slot, applies dietary
// substitutions and appends the goal and macro sentences.
func (g *Generator) fillMealContent(meal *Meal, profile Profile) {
	templates, ok := mealTemplates[meal.Slot]
	if !ok {
		templates = mealTemplates["snack"]
	}
	template := templates[g.rng.IntN(len(templates))]

	meal.Name = template.name
	meal.Description = template.description
	meal.Recipe = template.recipe

	applyRestrictions(meal, profile.Restrictions)

	switch {
	case profile.Goal == "weight_loss":
		meal.Description += " - Calorie-controlled for weight management."
	case profile.Goal == "muscle_gain":
		meal.Description += " - Protein-rich to support muscle growth."
	case strings.Contains(profile.Goal, "strength"):
		meal.Description += " - Balanced nutrition for strength development."
	case strings.Contains(profile.Goal, "endurance"):
		meal.Description += " - Carb-focused for endurance training."
	}

	meal.Description += fmt.Sprintf(
		" Contains approximately %d calories, %dg protein, %dg carbs, and %dg fat.",
		meal.Calories, meal.Protein, meal.Carbs, meal.Fat)
}

// Substitution patterns for dietary restrictions. Each pattern replaces
// only its first match in the recipe text.
var (
	meatPattern       = regexp.MustCompile(`chicken|beef|turkey|fish|salmon`)
	dairyYogurtRegexp = regexp.MustCompile(`greek yogurt|yogurt`)
	milkPattern       = regexp.MustCompile(`milk`)
	cheesePattern     = regexp.MustCompile(`cheese`)
	breadPattern      = regexp.MustCompile(`whole grain bread|bread`)
	wrapPattern       = regexp.MustCompile(`whole grain wrap|wrap`)
	oatsPattern       = regexp.MustCompile(`oats`)
)

// applyRestrictions performs the ordered dietary-restriction text
// substitutions. The restrictions field may join several terms; every
// matching restriction is applied in the fixed order below.
func applyRestrictions(meal *Meal, restrictions string) {
	lower := strings.ToLower(restrictions)
	if lower == "" || lower == "none" {
		return
	}

	if strings.Contains(lower, "vegetarian") {
		meal.Name = "Vegetarian " + meal.Name
		meal.Recipe = replaceFirst(meatPattern, meal.Recipe, "tofu or tempeh")
	}
	if strings.Contains(lower, "vegan") {
		meal.Name = "Vegan " + meal.Name
		meal.Recipe = replaceFirst(meatPattern, meal.Recipe, "tofu or tempeh")
		meal.Recipe = replaceFirst(dairyYogurtRegexp, meal.Recipe, "coconut yogurt")
		meal.Recipe = replaceFirst(milkPattern, meal.Recipe, "almond milk")
		meal.Recipe = replaceFirst(cheesePattern, meal.Recipe, "nutritional yeast")
	}
	if strings.Contains(lower, "gluten") {
		meal.Name = "Gluten-Free " + meal.Name
		meal.Recipe = replaceFirst(breadPattern, meal.Recipe, "gluten-free bread")
		meal.Recipe = replaceFirst(wrapPattern, meal.Recipe, "gluten-free wrap")
		meal.Recipe = replaceFirst(oatsPattern, meal.Recipe, "gluten-free oats")
	}
	if strings.Contains(lower, "lactose") || strings.Contains(lower, "dairy") {
		meal.Name = "Dairy-Free " + meal.Name
		meal.Recipe = replaceFirst(dairyYogurtRegexp, meal.Recipe, "coconut yogurt")
		meal.Recipe = replaceFirst(milkPattern, meal.Recipe, "almond milk")
		meal.Recipe = replaceFirst(cheesePattern, meal.Recipe, "dairy-free cheese")
	}
}

// replaceFirst replaces only the first match of the pattern.
func replaceFirst(pattern *regexp.Regexp, s, replacement string) string {
	loc := pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}
