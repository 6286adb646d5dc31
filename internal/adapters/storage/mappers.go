package storage

import (
	"github.com/lagreeflow/lagree/internal/domain"
)

// workoutEventModelToDomain converts a WorkoutEventModel (GORM) to domain.WorkoutEvent
func workoutEventModelToDomain(m WorkoutEventModel) domain.WorkoutEvent {
	return domain.WorkoutEvent{
		ExerciseID:    m.ExerciseID,
		ExerciseIndex: m.ExerciseIndex,
		ID:            m.ID,
		Kind:          domain.WorkoutEventKind(m.Kind),
		LessonID:      m.LessonID,
		OccurredAt:    m.OccurredAt.UTC(),
		SessionID:     m.SessionID,
		Skipped:       m.Skipped,
		WorkedSeconds: m.WorkedSeconds,
	}
}

// domainToWorkoutEventModel converts a domain.WorkoutEvent to WorkoutEventModel (GORM)
func domainToWorkoutEventModel(e domain.WorkoutEvent) WorkoutEventModel {
	return WorkoutEventModel{
		ExerciseID:    e.ExerciseID,
		ExerciseIndex: e.ExerciseIndex,
		ID:            e.ID,
		Kind:          string(e.Kind),
		LessonID:      e.LessonID,
		OccurredAt:    e.OccurredAt.UTC(),
		SessionID:     e.SessionID,
		Skipped:       e.Skipped,
		WorkedSeconds: e.WorkedSeconds,
	}
}
