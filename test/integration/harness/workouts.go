package harness

import (
	"time"

	"github.com/google/uuid"

	"github.com/lagreeflow/lagree/internal/domain"
)

const defaultWorkSeconds = 45

// Workout describes one recorded session for seeding the workout log
type Workout struct {
	ExerciseIDs []int     // Completed exercises, in lesson order
	Exited      bool      // Close with workout_exited instead of workout_completed
	LessonID    int
	SessionID   string    // Generated when empty
	StartedAt   time.Time // First exercise finishes WorkSeconds after this
	WorkSeconds int       // Worked seconds per exercise, defaults to 45
}

// Events returns the log entries a real session of w would have written:
// one exercise_completed per exercise, then the closing event
func (w Workout) Events() []domain.WorkoutEvent {
	if w.SessionID == "" {
		w.SessionID = uuid.NewString()
	}
	if w.WorkSeconds == 0 {
		w.WorkSeconds = defaultWorkSeconds
	}

	events := make([]domain.WorkoutEvent, 0, len(w.ExerciseIDs)+1)
	at := w.StartedAt
	for i, id := range w.ExerciseIDs {
		at = at.Add(time.Duration(w.WorkSeconds) * time.Second)
		events = append(events, domain.WorkoutEvent{
			ExerciseID:    id,
			ExerciseIndex: i,
			ID:            uuid.NewString(),
			Kind:          domain.EventExerciseCompleted,
			LessonID:      w.LessonID,
			OccurredAt:    at,
			SessionID:     w.SessionID,
			WorkedSeconds: w.WorkSeconds,
		})
	}

	closing := domain.WorkoutEvent{
		ExerciseIndex: max(len(w.ExerciseIDs)-1, 0),
		ID:            uuid.NewString(),
		Kind:          domain.EventWorkoutCompleted,
		LessonID:      w.LessonID,
		OccurredAt:    at.Add(time.Second),
		SessionID:     w.SessionID,
		WorkedSeconds: w.WorkSeconds * len(w.ExerciseIDs),
	}
	if w.Exited {
		closing.Kind = domain.EventWorkoutExited
	}
	return append(events, closing)
}

// SeedWorkouts writes the events of each workout to the test log
func (e *TestEnvironment) SeedWorkouts(workouts ...Workout) {
	e.tb.Helper()
	var events []domain.WorkoutEvent
	for _, w := range workouts {
		events = append(events, w.Events()...)
	}
	e.SeedEvents(events...)
}

// SeedStreak records one completed workout of lessonID on each of the last
// days calendar days, ending today
func (e *TestEnvironment) SeedStreak(days, lessonID int, exerciseIDs ...int) {
	e.tb.Helper()
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	workouts := make([]Workout, 0, days)
	for i := range days {
		workouts = append(workouts, Workout{
			ExerciseIDs: exerciseIDs,
			LessonID:    lessonID,
			StartedAt:   midnight.AddDate(0, 0, -i).Add(time.Second),
		})
	}
	e.SeedWorkouts(workouts...)
}
