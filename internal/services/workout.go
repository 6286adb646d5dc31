package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
)

// StatsInvalidator is notified when a session closes so cached stats are rebuilt
type StatsInvalidator interface {
	Invalidate()
}

// WorkoutService starts workout sessions and records their outcomes
type WorkoutService struct {
	active   map[string]*Workout // Open sessions by session id
	activeMu sync.Mutex
	catalog  ports.LessonCatalog
	log      ports.WorkoutLogWriter
	now      func() time.Time
	player   ports.SoundPlayer
	stats    StatsInvalidator
}

// NewWorkoutService creates a new WorkoutService.
// player and stats may be nil to disable sound cues and cache invalidation.
func NewWorkoutService(
	catalog ports.LessonCatalog,
	log ports.WorkoutLogWriter,
	player ports.SoundPlayer,
	stats StatsInvalidator,
) *WorkoutService {
	return &WorkoutService{
		active:  make(map[string]*Workout),
		catalog: catalog,
		log:     log,
		now:     time.Now,
		player:  player,
		stats:   stats,
	}
}

// Start resolves the lesson and creates a paused session on its first exercise.
// Returns domain.ErrLessonNotFound or domain.ErrInvalidLesson.
func (s *WorkoutService) Start(ctx context.Context, lessonID int) (*Workout, error) {
	lesson, err := s.catalog.Get(lessonID)
	if err != nil {
		logging.Logger.Warn("Cannot start workout", "lesson_id", lessonID, "error", err)
		return nil, fmt.Errorf("failed to start workout: %w", err)
	}

	timer, err := domain.NewWorkoutTimer(lesson)
	if err != nil {
		logging.Logger.Warn("Cannot start workout", "lesson_id", lessonID, "error", err)
		return nil, fmt.Errorf("failed to start workout: %w", err)
	}

	sessionID := uuid.New().String()
	w := &Workout{
		log:       logging.ForWorkout(sessionID, lesson.ID),
		service:   s,
		sessionID: sessionID,
		startedAt: s.now().UTC(),
		timer:     timer,
	}

	s.activeMu.Lock()
	s.active[w.sessionID] = w
	s.activeMu.Unlock()

	w.log.Info("Workout started", "exercises", len(lesson.Exercises))

	return w, nil
}

// ActiveCount returns how many sessions are neither complete nor exited
func (s *WorkoutService) ActiveCount() int {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()
	return len(s.active)
}

// ExitActive exits every open session, recording a workout_exited event for
// each. Called when the terminal or SSH connection goes away mid-workout.
// Returns the number of sessions exited.
func (s *WorkoutService) ExitActive(ctx context.Context) int {
	s.activeMu.Lock()
	open := make([]*Workout, 0, len(s.active))
	for _, w := range s.active {
		open = append(open, w)
	}
	s.activeMu.Unlock()

	for _, w := range open {
		w.log.Info("Exiting abandoned workout")
		w.Exit(ctx)
	}
	return len(open)
}

func (s *WorkoutService) forget(sessionID string) {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()
	delete(s.active, sessionID)
}

// Workout is one running session. It serializes ticks and commands on the
// underlying timer and records the events each transition produces.
// Safe for concurrent use.
type Workout struct {
	log       *slog.Logger // Tagged with the session and lesson
	mu        sync.Mutex
	service   *WorkoutService
	sessionID string
	startedAt time.Time
	timer     *domain.WorkoutTimer
}

// SessionID returns the identifier shared by every event of this session
func (w *Workout) SessionID() string {
	return w.sessionID
}

// StartedAt returns when the session was created
func (w *Workout) StartedAt() time.Time {
	return w.startedAt
}

// Lesson returns the lesson being performed
func (w *Workout) Lesson() domain.Lesson {
	return w.timer.Lesson()
}

// Snapshot returns the current timer state
func (w *Workout) Snapshot() domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer.Snapshot()
}

// CurrentExercise returns the exercise at the current index
func (w *Workout) CurrentExercise() domain.Exercise {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer.CurrentExercise()
}

// NextExercise returns the upcoming exercise, if any
func (w *Workout) NextExercise() (domain.Exercise, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer.NextExercise()
}

// PhaseDuration returns the full length of the current phase
func (w *Workout) PhaseDuration() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer.PhaseDuration()
}

// TotalWorkedSeconds returns the work seconds counted so far
func (w *Workout) TotalWorkedSeconds() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer.TotalWorkedSeconds()
}

// Tick advances the countdown by one second
func (w *Workout) Tick(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).Tick)
}

// TogglePlay switches between running and paused
func (w *Workout) TogglePlay(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).TogglePlay)
}

// Play starts or resumes the countdown
func (w *Workout) Play(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).Play)
}

// Pause stops the countdown
func (w *Workout) Pause(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).Pause)
}

// Skip ends the current phase immediately
func (w *Workout) Skip(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).Skip)
}

// Reset restores the full duration of the current phase and pauses
func (w *Workout) Reset(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).Reset)
}

// Exit tears the session down
func (w *Workout) Exit(ctx context.Context) domain.Snapshot {
	return w.apply(ctx, (*domain.WorkoutTimer).Exit)
}

// apply runs one transition under the lock, then records what it produced.
// Recording failures are logged and never alter timer state.
func (w *Workout) apply(ctx context.Context, op func(*domain.WorkoutTimer)) domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	op(w.timer)
	w.record(ctx, w.timer.DrainEvents())

	return w.timer.Snapshot()
}

func (w *Workout) record(ctx context.Context, events []domain.TimerEvent) {
	if len(events) == 0 {
		return
	}

	s := w.service
	now := s.now().UTC()
	lessonID := w.timer.Lesson().ID

	var logged []domain.WorkoutEvent
	closed := false

	for _, e := range events {
		w.log.Debug("Timer event",
			"kind", e.Kind,
			"phase", e.Phase,
			"exercise_index", e.ExerciseIndex)

		switch e.Kind {
		case domain.TimerPhaseStarted:
			if e.Phase == domain.PhaseRest {
				w.playCue(ports.SoundRest)
			} else {
				w.playCue(ports.SoundWork)
			}
			continue
		case domain.TimerWorkoutCompleted:
			w.playCue(ports.SoundComplete)
			closed = true
		case domain.TimerWorkoutExited:
			closed = true
		}

		logged = append(logged, toWorkoutEvent(e, w.sessionID, lessonID, now))
	}

	if len(logged) > 0 && s.log != nil {
		if err := s.log.Append(ctx, logged); err != nil {
			w.log.Error("Failed to record workout events",
				"count", len(logged),
				"error", err)
		}
	}

	if closed {
		s.forget(w.sessionID)
		w.log.Info("Workout closed",
			"complete", w.timer.Snapshot().Complete,
			"worked_seconds", w.timer.TotalWorkedSeconds())
		if s.stats != nil {
			s.stats.Invalidate()
		}
	}
}

func (w *Workout) playCue(cue string) {
	if w.service.player == nil {
		return
	}
	if err := w.service.player.PlaySoundForEvent(cue); err != nil {
		w.log.Warn("Failed to play sound cue", "cue", cue, "error", err)
	}
}

func toWorkoutEvent(e domain.TimerEvent, sessionID string, lessonID int, at time.Time) domain.WorkoutEvent {
	event := domain.WorkoutEvent{
		ExerciseID:    e.ExerciseID,
		ExerciseIndex: e.ExerciseIndex,
		ID:            uuid.New().String(),
		LessonID:      lessonID,
		OccurredAt:    at,
		SessionID:     sessionID,
		Skipped:       e.Skipped,
		WorkedSeconds: e.WorkedSeconds,
	}

	switch e.Kind {
	case domain.TimerExerciseCompleted:
		event.Kind = domain.EventExerciseCompleted
	case domain.TimerWorkoutCompleted:
		event.Kind = domain.EventWorkoutCompleted
		event.ExerciseID = 0
	case domain.TimerWorkoutExited:
		event.Kind = domain.EventWorkoutExited
		event.ExerciseID = 0
	}

	return event
}
