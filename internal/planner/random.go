package planner

import "math/rand/v2"

// intBetween draws a uniform integer from [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// sample draws up to count exercises from pool without replacement by
// shuffling a copy and slicing it. The copy is shuffled even when the
// whole pool is taken: selection order carries through to prescription
// order, so it must be randomized too.
func sample(rng *rand.Rand, pool []Exercise, count int) []Exercise {
	if count <= 0 {
		return []Exercise{}
	}
	shuffled := make([]Exercise, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// containsExercise reports whether the slice already holds the exercise.
func containsExercise(exercises []Exercise, target Exercise) bool {
	for _, ex := range exercises {
		if ex.ID == target.ID {
			return true
		}
	}
	return false
}
