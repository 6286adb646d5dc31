package domain

import "time"

// WorkoutEventKind identifies a recorded workout outcome
type WorkoutEventKind string

const (
	EventExerciseCompleted WorkoutEventKind = "exercise_completed"
	EventWorkoutCompleted  WorkoutEventKind = "workout_completed"
	EventWorkoutExited     WorkoutEventKind = "workout_exited"
)

// WorkoutEvent is one entry of the workout log
type WorkoutEvent struct {
	ExerciseID    int
	ExerciseIndex int
	ID            string
	Kind          WorkoutEventKind
	LessonID      int
	OccurredAt    time.Time
	SessionID     string
	Skipped       bool
	WorkedSeconds int
}

// IsWorkoutLevel reports whether the event closes a session
func (e WorkoutEvent) IsWorkoutLevel() bool {
	return e.Kind == EventWorkoutCompleted || e.Kind == EventWorkoutExited
}
