package domain

import (
	"fmt"
	"strings"
)

// Difficulty represents how demanding an exercise or lesson is
type Difficulty string

const (
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
)

// Difficulty symbols (Unicode)
const (
	SymbolAdvanced     = "▲▲▲"
	SymbolBeginner     = "▲"
	SymbolIntermediate = "▲▲"
)

// Symbol returns the display symbol for the difficulty level
func (d Difficulty) Symbol() string {
	switch d {
	case DifficultyAdvanced:
		return SymbolAdvanced
	case DifficultyIntermediate:
		return SymbolIntermediate
	default:
		return SymbolBeginner
	}
}

// Modifications describes easier and harder variants of an exercise
type Modifications struct {
	Easier string
	Harder string
}

// Exercise is a single timed movement (domain entity, immutable)
type Exercise struct {
	Description   string
	Difficulty    Difficulty
	Equipment     []string
	ID            int
	Instructions  []string
	Modifications *Modifications
	Name          string
	RestSeconds   int // 0 means no rest, advance immediately
	TargetMuscles []string
	Tips          []string
	WorkSeconds   int
}

// Lesson is an ordered workout composed of exercises (domain entity, immutable).
// WarmUp and CoolDown are shown to the user but never timed.
type Lesson struct {
	Category           string
	CoolDown           []Exercise
	Description        string
	Difficulty         Difficulty
	DurationMinutes    int
	Exercises          []Exercise
	ID                 int
	LearningObjectives []string
	Title              string
	WarmUp             []Exercise
}

// Validate checks that the lesson can drive a workout timer
func (l Lesson) Validate() error {
	if len(l.Exercises) == 0 {
		return fmt.Errorf("%w: lesson %d has no exercises", ErrInvalidLesson, l.ID)
	}
	for i, ex := range l.Exercises {
		if ex.WorkSeconds <= 0 {
			return fmt.Errorf("%w: exercise %d (position %d) has non-positive work duration %d",
				ErrInvalidLesson, ex.ID, i, ex.WorkSeconds)
		}
		if ex.RestSeconds < 0 {
			return fmt.Errorf("%w: exercise %d (position %d) has negative rest duration %d",
				ErrInvalidLesson, ex.ID, i, ex.RestSeconds)
		}
	}
	return nil
}

// TimedSeconds returns the sum of all work and rest durations
func (l Lesson) TimedSeconds() int {
	total := 0
	for _, ex := range l.Exercises {
		total += ex.WorkSeconds + ex.RestSeconds
	}
	return total
}

// Matches reports whether the lesson belongs to category and contains query
// in its title or description. An empty or "All" category matches every lesson.
func (l Lesson) Matches(category, query string) bool {
	if category != "" && !strings.EqualFold(category, CategoryAll) && !strings.EqualFold(l.Category, category) {
		return false
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Description), q)
}

// CategoryAll is the pseudo-category that matches every lesson
const CategoryAll = "All"

// FormatClock formats seconds as m:ss
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
