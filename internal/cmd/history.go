package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/ports"
)

// HistoryCmd lists recorded workout events, newest first
type HistoryCmd struct {
	Format string        `help:"Output format: table or json" enum:"table,json" default:"table"`
	Kind   string        `help:"Only show events of this kind (exercise_completed, workout_completed, workout_exited)"`
	Lesson int           `help:"Only show events for this lesson id"`
	Limit  int           `help:"Maximum number of events to show (0 = all)" default:"20"`
	Since  time.Duration `help:"Only show events newer than this (e.g., 168h)"`
}

// historyEventJSON is the JSON shape of a workout event
type historyEventJSON struct {
	ExerciseID    int       `json:"exercise_id,omitempty"`
	ExerciseIndex int       `json:"exercise_index"`
	Kind          string    `json:"kind"`
	LessonID      int       `json:"lesson_id"`
	OccurredAt    time.Time `json:"occurred_at"`
	SessionID     string    `json:"session_id"`
	Skipped       bool      `json:"skipped"`
	WorkedSeconds int       `json:"worked_seconds"`
}

// Validate rejects unknown event kinds before the log is read
func (h *HistoryCmd) Validate() error {
	switch domain.WorkoutEventKind(h.Kind) {
	case "", domain.EventExerciseCompleted, domain.EventWorkoutCompleted, domain.EventWorkoutExited:
		return nil
	}
	return fmt.Errorf("unknown event kind %q", h.Kind)
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	filter := ports.WorkoutLogFilter{
		Kind:     domain.WorkoutEventKind(h.Kind),
		LessonID: h.Lesson,
		Limit:    h.Limit,
	}
	if h.Since > 0 {
		filter.From = time.Now().Add(-h.Since)
	}

	events, err := cli.Container.WorkoutLog.List(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to read workout log: %w", err)
	}

	if h.Format == "json" {
		out := make([]historyEventJSON, 0, len(events))
		for _, e := range events {
			out = append(out, historyEventJSON{
				ExerciseID:    e.ExerciseID,
				ExerciseIndex: e.ExerciseIndex,
				Kind:          string(e.Kind),
				LessonID:      e.LessonID,
				OccurredAt:    e.OccurredAt,
				SessionID:     e.SessionID,
				Skipped:       e.Skipped,
				WorkedSeconds: e.WorkedSeconds,
			})
		}
		return printJSON(out)
	}

	if len(events) == 0 {
		fmt.Println("No workout events recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "When\tEvent\tLesson\tExercise\tWorked\tSkipped")
	fmt.Fprintln(w, "────\t─────\t──────\t────────\t──────\t───────")
	for _, e := range events {
		lessonTitle, exerciseName := describeEvent(cli.Container.Catalog, e)
		skipped := "-"
		if e.Skipped {
			skipped = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.OccurredAt.Local().Format("2006-01-02 15:04"),
			e.Kind,
			lessonTitle,
			exerciseName,
			domain.FormatClock(e.WorkedSeconds),
			skipped)
	}
	w.Flush()
	return nil
}

// describeEvent resolves catalog names, falling back to ids for lessons
// that are no longer in the catalog
func describeEvent(catalog ports.LessonCatalog, e domain.WorkoutEvent) (string, string) {
	lessonTitle := fmt.Sprintf("#%d", e.LessonID)
	if lesson, err := catalog.Get(e.LessonID); err == nil {
		lessonTitle = lesson.Title
	}

	if e.IsWorkoutLevel() {
		return lessonTitle, "-"
	}
	exerciseName := fmt.Sprintf("#%d", e.ExerciseID)
	if ex, err := catalog.Exercise(e.ExerciseID); err == nil {
		exerciseName = ex.Name
	}
	return lessonTitle, exerciseName
}
