package planner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Session duration base ranges in minutes per experience level.
var sessionDurationRanges = map[string]Range{
	"beginner":     {Min: 30, Max: 45},
	"intermediate": {Min: 45, Max: 60},
	"advanced":     {Min: 60, Max: 90},
}

const (
	restDayName        = "Rest Day"
	restDayDescription = "Active recovery or complete rest"
)

// Sessions expands the configuration's day split into concrete sessions,
// one per split entry in day order. Rest days get a zero duration and no
// exercises; the selector is never invoked for them.
func (g *Generator) Sessions(cfg Config, profile Profile, pool []Exercise) []Session {
	sessions := make([]Session, 0, len(cfg.Split))
	for _, day := range cfg.Split {
		if day.MuscleGroup == "rest" {
			sessions = append(sessions, Session{
				Day:             day.Day,
				Name:            fmt.Sprintf("Day %d: %s", day.Day, restDayName),
				Description:     restDayDescription,
				MuscleGroups:    "rest",
				DurationMinutes: 0,
			})
			continue
		}

		session := Session{
			Day:             day.Day,
			Name:            fmt.Sprintf("Day %d: %s", day.Day, formatLabel(day.MuscleGroup)),
			Description:     sessionDescription(day.MuscleGroup, profile.Goal),
			MuscleGroups:    day.MuscleGroup,
			DurationMinutes: g.sessionDuration(profile),
		}

		selected := g.SelectExercises(day.MuscleGroup, cfg, profile, pool)
		if len(selected) == 0 {
			g.log.Warn("no suitable exercises for session",
				zap.Int("day", day.Day),
				zap.String("muscle_group", day.MuscleGroup))
		}
		for i, ex := range selected {
			session.Exercises = append(session.Exercises, g.prescribe(ex, profile.Goal, day.MuscleGroup, cfg, i+1))
		}

		sessions = append(sessions, session)
	}
	return sessions
}

// sessionDuration draws a duration from the experience base range and
// applies the goal bonus. Endurance is checked before weight loss; a goal
// carrying both gets the endurance bonus.
func (g *Generator) sessionDuration(profile Profile) int {
	base, ok := sessionDurationRanges[profile.Experience]
	if !ok {
		base = sessionDurationRanges["advanced"]
	}
	duration := intBetween(g.rng, base.Min, base.Max)

	if strings.Contains(profile.Goal, "endurance") {
		duration += 15
	} else if profile.Goal == "weight_loss" {
		duration += 10
	}
	return duration
}

// sessionDescription produces the goal-keyed descriptive text for a
// training day.
func sessionDescription(muscleGroup, goal string) string {
	label := formatLabel(muscleGroup)

	switch {
	case goal == "weight_loss":
		return fmt.Sprintf("High intensity %s workout with minimal rest to maximize calorie burn", label)
	case goal == "muscle_gain":
		if strings.Contains(muscleGroup, "chest") || strings.Contains(muscleGroup, "back") || strings.Contains(muscleGroup, "legs") {
			return fmt.Sprintf("Heavy %s workout focused on hypertrophy with progressive overload", label)
		}
		return fmt.Sprintf("Targeted %s workout with isolation and compound movements", label)
	case strings.Contains(goal, "strength"):
		return fmt.Sprintf("Heavy %s workout with compound lifts and longer rest periods", label)
	case strings.Contains(goal, "endurance"):
		return fmt.Sprintf("High-rep %s workout with minimal rest to build muscular endurance", label)
	}
	return fmt.Sprintf("Focus on %s", label)
}
