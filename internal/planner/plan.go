package planner

import (
	"fmt"
	"strings"
)

// Meta is the derived workout plan header.
type Meta struct {
	Name          string
	Description   string
	DurationWeeks int
}

const defaultDurationWeeks = 12

// PlanMeta derives the plan name, description and duration from goal and
// experience level. Goal categories beyond the core enum are matched by
// substring so free-text goals like "strength_focus" land in the strength
// branch.
func PlanMeta(goal, experience string) Meta {
	meta := Meta{DurationWeeks: defaultDurationWeeks}

	switch {
	case goal == "weight_loss":
		meta.Name = "Fat Burning Plan"
		switch experience {
		case "beginner":
			meta.Description = "Beginner-friendly fat loss program with progressive intensity"
			meta.DurationWeeks = 8
		case "intermediate":
			meta.Description = "Moderate intensity fat loss program with cardio acceleration"
		default:
			meta.Description = "Advanced fat loss program with high intensity intervals"
			meta.DurationWeeks = 16
		}
	case goal == "muscle_gain":
		meta.Name = "Muscle Building Plan"
		switch experience {
		case "beginner":
			meta.Description = "Fundamental muscle building program focusing on form and progressive overload"
		case "intermediate":
			meta.Description = "Hypertrophy-focused program with periodized volume and intensity"
		default:
			meta.Description = "Advanced hypertrophy program with specialized techniques"
		}
	case strings.Contains(goal, "strength"):
		meta.Name = "Strength Development Plan"
		switch experience {
		case "beginner":
			meta.Description = "Linear progression strength program for beginners"
		case "intermediate":
			meta.Description = "Intermediate strength program with wave periodization"
		default:
			meta.Description = "Advanced strength program with specialized lifts and periodization"
		}
	default:
		meta.Name = fmt.Sprintf("%s Plan", formatLabel(goal))
		meta.Description = fmt.Sprintf("Custom %s plan for %s level", formatLabel(goal), experience)
	}

	return meta
}
