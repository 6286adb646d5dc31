package storage

import "time"

// WorkoutEventModel is the GORM model for workout_events table
type WorkoutEventModel struct {
	CreatedAt     time.Time
	ExerciseID    int       `gorm:"not null;default:0"`
	ExerciseIndex int       `gorm:"not null;default:0"`
	ID            string    `gorm:"primaryKey"`
	Kind          string    `gorm:"not null;index:idx_kind;check:kind IN ('exercise_completed','workout_completed','workout_exited')"`
	LessonID      int       `gorm:"not null;index:idx_lesson_id"`
	OccurredAt    time.Time `gorm:"not null;index:idx_occurred_at"`
	SessionID     string    `gorm:"not null;index:idx_session_id"`
	Skipped       bool      `gorm:"not null;default:false"`
	WorkedSeconds int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (WorkoutEventModel) TableName() string { return "workout_events" }
