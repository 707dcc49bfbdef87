package planner

import (
	"math"
	"strings"
)

// compoundTerms identify multi-joint movements by name keyword.
var compoundTerms = []string{
	"squat", "deadlift", "press", "row", "bench",
	"pull-up", "pullup", "chin-up", "chinup", "dip",
}

// specializedMuscles expands specialized split labels into traditional
// muscle-group synonyms for filtering.
var specializedMuscles = map[string][]string{
	"hiit_strength":    {"full_body", "legs", "core", "shoulders"},
	"tabata":           {"full_body", "core", "legs"},
	"circuit_training": {"full_body", "chest", "back", "legs", "core"},
	"endurance":        {"full_body", "legs", "core"},
	"active_recovery":  {"core", "back", "full_body"},
}

// specializedKeywords drive the name-keyword fallback filter for
// specialized labels. Tabata favors explosive, short-burst movements;
// active recovery favors low-intensity mobility work.
var specializedKeywords = map[string][]string{
	"hiit_strength":    {"burpee", "thruster", "swing", "clean", "jump", "press"},
	"tabata":           {"burpee", "jump", "sprint", "mountain", "squat", "high knee"},
	"circuit_training": {"push-up", "pushup", "row", "lunge", "plank", "squat"},
	"endurance":        {"run", "cycle", "row", "step", "climber", "jumping"},
	"active_recovery":  {"stretch", "walk", "yoga", "mobility", "foam", "swim"},
}

func isCompound(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range compoundTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// muscleTokens resolves a split tag into the muscle tokens used for
// substring filtering. Specialized labels expand to their synonym list;
// anything else splits on underscores.
func muscleTokens(tag string) []string {
	if synonyms, ok := specializedMuscles[tag]; ok {
		return synonyms
	}
	return strings.Split(tag, "_")
}

func matchesMuscle(ex Exercise, tokens []string) bool {
	group := strings.ToLower(ex.MuscleGroup)
	for _, token := range tokens {
		if strings.Contains(group, strings.ToLower(token)) {
			return true
		}
	}
	return false
}

// adjacentLevels returns the relaxed difficulty set for tier two:
// beginner and advanced admit intermediate; intermediate admits both
// neighbors.
func adjacentLevels(experience string) []string {
	switch experience {
	case "beginner":
		return []string{"beginner", "intermediate"}
	case "advanced":
		return []string{"advanced", "intermediate"}
	default:
		return []string{"beginner", "intermediate", "advanced"}
	}
}

func filterPool(pool []Exercise, keep func(Exercise) bool) []Exercise {
	var out []Exercise
	for _, ex := range pool {
		if keep(ex) {
			out = append(out, ex)
		}
	}
	return out
}

// candidates runs the relaxation tiers over the pool. Each tier's output
// replaces the previous one and the cascade short-circuits once the
// configured minimum is reached; the final scarcity tier supplements
// instead, topping up from the rest of the pool without replacement.
func candidates(tag string, cfg Config, profile Profile, pool []Exercise) []Exercise {
	tokens := muscleTokens(tag)
	minCount := cfg.ExerciseCount.Min

	// Tier 1: exact level and muscle match.
	matched := filterPool(pool, func(ex Exercise) bool {
		return ex.Difficulty == profile.Experience && matchesMuscle(ex, tokens)
	})
	if len(matched) >= minCount {
		return matched
	}

	// Tier 2: relax to adjacent levels.
	levels := adjacentLevels(profile.Experience)
	matched = filterPool(pool, func(ex Exercise) bool {
		for _, level := range levels {
			if ex.Difficulty == level {
				return matchesMuscle(ex, tokens)
			}
		}
		return false
	})
	if len(matched) >= minCount {
		return matched
	}

	// Tier 3: muscle match at any level.
	matched = filterPool(pool, func(ex Exercise) bool {
		return matchesMuscle(ex, tokens)
	})
	if len(matched) >= minCount {
		return matched
	}

	// Tier 4: specialized labels fall back to a name-keyword filter.
	if keywords, ok := specializedKeywords[tag]; ok {
		byKeyword := filterPool(pool, func(ex Exercise) bool {
			lower := strings.ToLower(ex.Name)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					return true
				}
			}
			return false
		})
		if len(byKeyword) > 0 {
			matched = byKeyword
		}
		if len(matched) >= minCount {
			return matched
		}
	}

	// Tier 5: scarcity fallback, top up from the rest of the pool.
	for _, ex := range pool {
		if len(matched) >= minCount {
			break
		}
		if !containsExercise(matched, ex) {
			matched = append(matched, ex)
		}
	}
	return matched
}

// SelectExercises filters the pool for a session's muscle tag and picks a
// goal-weighted subset. An empty result is valid: the session simply gets
// no prescriptions.
func (g *Generator) SelectExercises(tag string, cfg Config, profile Profile, pool []Exercise) []Exercise {
	suitable := candidates(tag, cfg, profile, pool)
	if len(suitable) == 0 {
		return nil
	}

	min, max := cfg.ExerciseCount.Min, cfg.ExerciseCount.Max
	_, specialized := specializedMuscles[tag]

	var selected []Exercise
	switch {
	case profile.Goal == "muscle_gain" || strings.Contains(profile.Goal, "strength"):
		selected = g.selectCompoundFirst(suitable, min, max)
	case profile.Goal == "weight_loss":
		count := intBetween(g.rng, min+1, max+2)
		selected = sample(g.rng, suitable, count)
	case specialized:
		count := intBetween(g.rng, min+1, max+3)
		selected = sample(g.rng, suitable, count)
	default:
		count := intBetween(g.rng, min, max)
		selected = sample(g.rng, suitable, count)
	}

	// Floor: a non-rest session with a non-empty candidate set gets at
	// least two exercises, capped by what is available.
	for _, ex := range suitable {
		if len(selected) >= 2 {
			break
		}
		if !containsExercise(selected, ex) {
			selected = append(selected, ex)
		}
	}
	return selected
}

// selectCompoundFirst implements the strength/hypertrophy policy: at
// least 60% of the target count (rounded up) must be compound movements,
// capped by availability, and compounds are ordered before isolations.
func (g *Generator) selectCompoundFirst(suitable []Exercise, min, max int) []Exercise {
	compounds := filterPool(suitable, func(ex Exercise) bool { return isCompound(ex.Name) })
	isolations := filterPool(suitable, func(ex Exercise) bool { return !isCompound(ex.Name) })

	count := intBetween(g.rng, min, max)
	minCompounds := int(math.Ceil(float64(count) * 0.6))
	compoundCount := minCompounds
	if compoundCount > len(compounds) {
		compoundCount = len(compounds)
	}
	isolationCount := count - compoundCount
	if isolationCount > len(isolations) {
		isolationCount = len(isolations)
	}

	selected := sample(g.rng, compounds, compoundCount)
	return append(selected, sample(g.rng, isolations, isolationCount)...)
}
