package ports

import (
	"context"
	"time"

	"github.com/lagreeflow/lagree/internal/domain"
)

// WorkoutLogFilter specifies criteria for reading the workout log
type WorkoutLogFilter struct {
	From     time.Time // Zero means no lower bound
	Kind     domain.WorkoutEventKind
	LessonID int
	Limit    int // 0 means no limit; newest events first when set
	To       time.Time
}

// WorkoutLogWriter appends workout events
type WorkoutLogWriter interface {
	Append(ctx context.Context, events []domain.WorkoutEvent) error
}

// WorkoutLogReader reads workout events
type WorkoutLogReader interface {
	// List returns events ordered by occurrence (oldest first unless Limit is set)
	List(ctx context.Context, filter WorkoutLogFilter) ([]domain.WorkoutEvent, error)
}

// WorkoutLogRepository is the composite interface
type WorkoutLogRepository interface {
	WorkoutLogReader
	WorkoutLogWriter
	Close() error
}
