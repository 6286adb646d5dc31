package domain

// Phase is the interval a workout timer is counting down
type Phase string

const (
	PhaseRest Phase = "rest"
	PhaseWork Phase = "work"
)

// Snapshot is a read-only view of a workout timer session
type Snapshot struct {
	Complete         bool
	CurrentIndex     int
	Exited           bool
	Phase            Phase
	RemainingSeconds int
	Running          bool
}

// TimerEventKind identifies what happened inside the timer
type TimerEventKind string

const (
	TimerExerciseCompleted TimerEventKind = "exercise_completed"
	TimerPhaseStarted      TimerEventKind = "phase_started"
	TimerWorkoutCompleted  TimerEventKind = "workout_completed"
	TimerWorkoutExited     TimerEventKind = "workout_exited"
)

// TimerEvent is queued by the timer on every transition and pulled by the caller
// with DrainEvents. The timer itself never calls out.
type TimerEvent struct {
	ExerciseID    int
	ExerciseIndex int
	Kind          TimerEventKind
	Phase         Phase // Set for TimerPhaseStarted
	Skipped       bool  // Work phase ended through Skip
	WorkedSeconds int   // Exercise: seconds of this work phase; workout: running total
}

// WorkoutTimer is the countdown state machine for one lesson session.
//
// States are Work, Rest and Complete. A session starts paused in Work on the
// first exercise. Ticks only count down while running; when the countdown
// reaches zero the phase expires: Work moves to Rest when the exercise has a
// rest duration, otherwise (and after Rest) the timer advances. Advancing
// pauses the session at the start of the next exercise, or completes it after
// the last one.
//
// WorkoutTimer is not safe for concurrent use; callers serialize ticks and
// commands (see services.Workout).
type WorkoutTimer struct {
	complete         bool
	events           []TimerEvent
	exited           bool
	index            int
	lesson           Lesson
	phase            Phase
	remaining        int
	running          bool
	skipped          bool
	skippedRemaining int
	totalWorked      int
}

// NewWorkoutTimer creates a timer positioned at the first exercise's work phase.
// Returns ErrInvalidLesson if the lesson cannot be timed.
func NewWorkoutTimer(lesson Lesson) (*WorkoutTimer, error) {
	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	return &WorkoutTimer{
		lesson:    lesson,
		phase:     PhaseWork,
		remaining: lesson.Exercises[0].WorkSeconds,
	}, nil
}

// Snapshot returns the current observable state
func (t *WorkoutTimer) Snapshot() Snapshot {
	return Snapshot{
		Complete:         t.complete,
		CurrentIndex:     t.index,
		Exited:           t.exited,
		Phase:            t.phase,
		RemainingSeconds: t.remaining,
		Running:          t.running,
	}
}

// Lesson returns the lesson being performed
func (t *WorkoutTimer) Lesson() Lesson {
	return t.lesson
}

// CurrentExercise returns the exercise at the current index
func (t *WorkoutTimer) CurrentExercise() Exercise {
	return t.lesson.Exercises[t.index]
}

// NextExercise returns the exercise after the current one, if any
func (t *WorkoutTimer) NextExercise() (Exercise, bool) {
	if t.index+1 >= len(t.lesson.Exercises) {
		return Exercise{}, false
	}
	return t.lesson.Exercises[t.index+1], true
}

// PhaseDuration returns the full duration of the current phase
func (t *WorkoutTimer) PhaseDuration() int {
	ex := t.CurrentExercise()
	if t.phase == PhaseRest {
		return ex.RestSeconds
	}
	return ex.WorkSeconds
}

// TotalWorkedSeconds returns the work seconds accumulated by finished exercises
func (t *WorkoutTimer) TotalWorkedSeconds() int {
	return t.totalWorked
}

// Tick advances the countdown by one second. It is a no-op unless the
// session is running; reaching zero expires the phase within the same tick.
func (t *WorkoutTimer) Tick() {
	if t.done() || !t.running {
		return
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.expire()
	}
}

// TogglePlay switches between running and paused
func (t *WorkoutTimer) TogglePlay() {
	if t.done() {
		return
	}
	t.running = !t.running
}

// Play starts or resumes the countdown
func (t *WorkoutTimer) Play() {
	if t.done() {
		return
	}
	t.running = true
}

// Pause stops the countdown without touching the remaining time
func (t *WorkoutTimer) Pause() {
	if t.done() {
		return
	}
	t.running = false
}

// Skip ends the current phase immediately, exactly as if the countdown had
// reached zero. A paused session moves on as well.
func (t *WorkoutTimer) Skip() {
	if t.done() {
		return
	}
	if t.phase == PhaseWork {
		t.skipped = true
		t.skippedRemaining = t.remaining
	}
	t.remaining = 0
	t.expire()
}

// Reset pauses and restores the full duration of the current phase.
// The exercise index and phase are unchanged.
func (t *WorkoutTimer) Reset() {
	if t.done() {
		return
	}
	t.running = false
	t.remaining = t.PhaseDuration()
}

// Exit tears the session down. Every later operation is a no-op.
func (t *WorkoutTimer) Exit() {
	if t.exited {
		return
	}
	t.exited = true
	t.running = false
	if t.complete {
		return
	}
	t.emit(TimerEvent{
		ExerciseID:    t.CurrentExercise().ID,
		ExerciseIndex: t.index,
		Kind:          TimerWorkoutExited,
		WorkedSeconds: t.totalWorked,
	})
}

// DrainEvents returns the events queued since the last call and clears the queue
func (t *WorkoutTimer) DrainEvents() []TimerEvent {
	events := t.events
	t.events = nil
	return events
}

func (t *WorkoutTimer) done() bool {
	return t.complete || t.exited
}

// expire handles a phase whose countdown reached zero
func (t *WorkoutTimer) expire() {
	ex := t.CurrentExercise()

	if t.phase == PhaseWork {
		worked := ex.WorkSeconds
		if t.skipped {
			worked = ex.WorkSeconds - t.skippedRemaining
		}
		t.totalWorked += worked
		t.emit(TimerEvent{
			ExerciseID:    ex.ID,
			ExerciseIndex: t.index,
			Kind:          TimerExerciseCompleted,
			Skipped:       t.skipped,
			WorkedSeconds: worked,
		})
		t.skipped = false
		t.skippedRemaining = 0

		// Zero-length rests are never entered
		if ex.RestSeconds > 0 {
			t.phase = PhaseRest
			t.remaining = ex.RestSeconds
			t.emit(TimerEvent{
				ExerciseID:    ex.ID,
				ExerciseIndex: t.index,
				Kind:          TimerPhaseStarted,
				Phase:         PhaseRest,
			})
			return
		}
	}

	t.advance()
}

// advance moves to the next exercise (paused) or completes the session
func (t *WorkoutTimer) advance() {
	if t.index == len(t.lesson.Exercises)-1 {
		t.complete = true
		t.running = false
		t.emit(TimerEvent{
			ExerciseID:    t.CurrentExercise().ID,
			ExerciseIndex: t.index,
			Kind:          TimerWorkoutCompleted,
			WorkedSeconds: t.totalWorked,
		})
		return
	}

	t.index++
	t.phase = PhaseWork
	t.remaining = t.CurrentExercise().WorkSeconds
	t.running = false
	t.emit(TimerEvent{
		ExerciseID:    t.CurrentExercise().ID,
		ExerciseIndex: t.index,
		Kind:          TimerPhaseStarted,
		Phase:         PhaseWork,
	})
}

func (t *WorkoutTimer) emit(e TimerEvent) {
	t.events = append(t.events, e)
}
