package planner

import "strings"

// prescriptionRanges bundles the numeric bounds for one policy row.
type prescriptionRanges struct {
	sets Range
	reps Range
	rest Range
}

// specializedPrescriptions are the set/rep/rest bounds for specialized
// split labels. They apply only when no goal-specific table matched.
var specializedPrescriptions = map[string]prescriptionRanges{
	"hiit_strength":    {sets: Range{3, 5}, reps: Range{8, 12}, rest: Range{30, 60}},
	"tabata":           {sets: Range{4, 8}, reps: Range{15, 20}, rest: Range{10, 20}},
	"circuit_training": {sets: Range{3, 5}, reps: Range{12, 15}, rest: Range{15, 30}},
	"endurance":        {sets: Range{2, 4}, reps: Range{15, 25}, rest: Range{30, 45}},
	"active_recovery":  {sets: Range{1, 3}, reps: Range{10, 15}, rest: Range{30, 60}},
}

// prescribe assigns sets, reps and rest for one selected exercise.
// Precedence: goal-specific tables, then specialized-label tables, then
// the configuration's generic compound/isolation ranges. Every value is
// drawn uniformly from its inclusive range.
func (g *Generator) prescribe(ex Exercise, goal, tag string, cfg Config, order int) Prescription {
	compound := isCompound(ex.Name)
	ranges, ok := goalPrescription(goal, compound)
	if !ok {
		ranges, ok = specializedPrescriptions[tag]
	}
	if !ok {
		ranges = configPrescription(cfg, compound)
	}

	return Prescription{
		ExerciseID:  ex.ID,
		Sets:        intBetween(g.rng, ranges.sets.Min, ranges.sets.Max),
		Reps:        intBetween(g.rng, ranges.reps.Min, ranges.reps.Max),
		RestSeconds: intBetween(g.rng, ranges.rest.Min, ranges.rest.Max),
		Order:       order,
	}
}

// goalPrescription returns the goal-keyed bounds. Strength is checked
// before endurance so combined goals land in the strength branch.
func goalPrescription(goal string, compound bool) (prescriptionRanges, bool) {
	switch {
	case strings.Contains(goal, "strength"):
		if compound {
			return prescriptionRanges{sets: Range{4, 5}, reps: Range{3, 6}, rest: Range{180, 240}}, true
		}
		return prescriptionRanges{sets: Range{3, 4}, reps: Range{6, 10}, rest: Range{120, 180}}, true
	case goal == "muscle_gain":
		if compound {
			return prescriptionRanges{sets: Range{3, 5}, reps: Range{6, 12}, rest: Range{90, 120}}, true
		}
		return prescriptionRanges{sets: Range{3, 4}, reps: Range{8, 15}, rest: Range{60, 90}}, true
	case goal == "weight_loss":
		return prescriptionRanges{sets: Range{3, 4}, reps: Range{12, 20}, rest: Range{30, 60}}, true
	case strings.Contains(goal, "endurance"):
		return prescriptionRanges{sets: Range{2, 4}, reps: Range{15, 25}, rest: Range{30, 45}}, true
	}
	return prescriptionRanges{}, false
}

func configPrescription(cfg Config, compound bool) prescriptionRanges {
	if compound {
		return prescriptionRanges{sets: cfg.Sets.Compound, reps: cfg.Reps.Compound, rest: cfg.RestPeriod}
	}
	return prescriptionRanges{sets: cfg.Sets.Isolation, reps: cfg.Reps.Isolation, rest: cfg.RestPeriod}
}
