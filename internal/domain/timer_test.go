package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoExerciseLesson is the reference lesson: [{45,15}, {30,0}]
func twoExerciseLesson() Lesson {
	return Lesson{
		ID:    1,
		Title: "Reference",
		Exercises: []Exercise{
			{ID: 10, Name: "Plank to Pike", WorkSeconds: 45, RestSeconds: 15},
			{ID: 20, Name: "Dead Bug", WorkSeconds: 30, RestSeconds: 0},
		},
	}
}

func tickN(t *WorkoutTimer, n int) {
	for i := 0; i < n; i++ {
		t.Tick()
	}
}

func newTimer(t *testing.T, lesson Lesson) *WorkoutTimer {
	t.Helper()
	timer, err := NewWorkoutTimer(lesson)
	require.NoError(t, err)
	return timer
}

func TestNewWorkoutTimer_InitialState(t *testing.T) {
	tests := []struct {
		name   string
		lesson Lesson
	}{
		{"reference lesson", twoExerciseLesson()},
		{"single exercise", Lesson{ID: 2, Exercises: []Exercise{{ID: 1, WorkSeconds: 60, RestSeconds: 15}}}},
		{"no rest", Lesson{ID: 3, Exercises: []Exercise{{ID: 1, WorkSeconds: 5}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := newTimer(t, tt.lesson)

			assert.Equal(t, Snapshot{
				CurrentIndex:     0,
				Phase:            PhaseWork,
				RemainingSeconds: tt.lesson.Exercises[0].WorkSeconds,
			}, timer.Snapshot())
			assert.Empty(t, timer.DrainEvents())
		})
	}
}

func TestNewWorkoutTimer_InvalidLesson(t *testing.T) {
	tests := []struct {
		name   string
		lesson Lesson
	}{
		{"no exercises", Lesson{ID: 1}},
		{"zero work", Lesson{ID: 1, Exercises: []Exercise{{ID: 1, WorkSeconds: 0}}}},
		{"negative rest", Lesson{ID: 1, Exercises: []Exercise{{ID: 1, WorkSeconds: 10, RestSeconds: -1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, err := NewWorkoutTimer(tt.lesson)

			require.ErrorIs(t, err, ErrInvalidLesson)
			assert.Nil(t, timer)
		})
	}
}

func TestTick_PausedDoesNothing(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())

	tickN(timer, 10)

	assert.Equal(t, 45, timer.Snapshot().RemainingSeconds)
	assert.False(t, timer.Snapshot().Running)
}

func TestTick_WorkExpiresIntoRest(t *testing.T) {
	tests := []struct {
		name string
		work int
		rest int
	}{
		{"short", 1, 1},
		{"reference", 45, 15},
		{"long rest", 30, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := Lesson{ID: 1, Exercises: []Exercise{
				{ID: 1, WorkSeconds: tt.work, RestSeconds: tt.rest},
				{ID: 2, WorkSeconds: 10},
			}}
			timer := newTimer(t, lesson)
			timer.Play()

			tickN(timer, tt.work-1)
			assert.Equal(t, PhaseWork, timer.Snapshot().Phase)
			assert.Equal(t, 1, timer.Snapshot().RemainingSeconds)

			timer.Tick()
			snap := timer.Snapshot()
			assert.Equal(t, PhaseRest, snap.Phase)
			assert.Equal(t, tt.rest, snap.RemainingSeconds)
			assert.True(t, snap.Running, "entering rest keeps the session running")
			assert.Equal(t, 0, snap.CurrentIndex)
		})
	}
}

func TestTick_ZeroRestAdvancesDirectly(t *testing.T) {
	lesson := Lesson{ID: 1, Exercises: []Exercise{
		{ID: 1, WorkSeconds: 3, RestSeconds: 0},
		{ID: 2, WorkSeconds: 20, RestSeconds: 10},
	}}
	timer := newTimer(t, lesson)
	timer.Play()

	for i := 0; i < 3; i++ {
		timer.Tick()
		assert.Equal(t, PhaseWork, timer.Snapshot().Phase, "rest must never be observed")
	}

	assert.Equal(t, Snapshot{
		CurrentIndex:     1,
		Phase:            PhaseWork,
		RemainingSeconds: 20,
		Running:          false,
	}, timer.Snapshot())

	for _, e := range timer.DrainEvents() {
		if e.Kind == TimerPhaseStarted {
			assert.NotEqual(t, PhaseRest, e.Phase)
		}
	}
}

func TestReferenceScenario(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())

	assert.Equal(t, Snapshot{CurrentIndex: 0, Phase: PhaseWork, RemainingSeconds: 45}, timer.Snapshot())

	timer.TogglePlay()
	assert.True(t, timer.Snapshot().Running)

	tickN(timer, 45)
	assert.Equal(t, Snapshot{CurrentIndex: 0, Phase: PhaseRest, RemainingSeconds: 15, Running: true}, timer.Snapshot())

	tickN(timer, 15)
	assert.Equal(t, Snapshot{CurrentIndex: 1, Phase: PhaseWork, RemainingSeconds: 30, Running: false}, timer.Snapshot())

	timer.TogglePlay()
	tickN(timer, 30)
	snap := timer.Snapshot()
	assert.True(t, snap.Complete)
	assert.False(t, snap.Running)

	events := timer.DrainEvents()
	kinds := make([]TimerEventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []TimerEventKind{
		TimerExerciseCompleted,
		TimerPhaseStarted,
		TimerPhaseStarted,
		TimerExerciseCompleted,
		TimerWorkoutCompleted,
	}, kinds)
	assert.Equal(t, 75, events[len(events)-1].WorkedSeconds)
}

func TestSkip_ImmediatelyAfterStart(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())

	timer.Skip()

	snap := timer.Snapshot()
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, PhaseRest, snap.Phase)
	assert.Equal(t, 15, snap.RemainingSeconds)
	assert.False(t, snap.Running)

	events := timer.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, TimerExerciseCompleted, events[0].Kind)
	assert.True(t, events[0].Skipped)
	assert.Equal(t, 0, events[0].WorkedSeconds)
}

func TestSkip_BehavesLikeNaturalExpiry(t *testing.T) {
	tests := []struct {
		name      string
		ticks     int
		wantPhase Phase
		wantIndex int
		wantLeft  int
	}{
		{"at full duration", 0, PhaseRest, 0, 15},
		{"mid phase", 20, PhaseRest, 0, 15},
		{"one second left", 44, PhaseRest, 0, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skipped := newTimer(t, twoExerciseLesson())
			skipped.Play()
			tickN(skipped, tt.ticks)
			skipped.Skip()

			natural := newTimer(t, twoExerciseLesson())
			natural.Play()
			tickN(natural, 45)

			assert.Equal(t, natural.Snapshot(), skipped.Snapshot())
			assert.Equal(t, tt.wantPhase, skipped.Snapshot().Phase)
			assert.Equal(t, tt.wantIndex, skipped.Snapshot().CurrentIndex)
			assert.Equal(t, tt.wantLeft, skipped.Snapshot().RemainingSeconds)
		})
	}
}

func TestSkip_WorkedSecondsReflectElapsedTime(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())
	timer.Play()
	tickN(timer, 20)

	timer.Skip()

	events := timer.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, 20, events[0].WorkedSeconds)
	assert.Equal(t, 20, timer.TotalWorkedSeconds())
}

func TestSkip_RestAdvancesAndPauses(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())
	timer.Skip() // work -> rest
	timer.Play()

	timer.Skip() // rest -> next exercise

	assert.Equal(t, Snapshot{CurrentIndex: 1, Phase: PhaseWork, RemainingSeconds: 30}, timer.Snapshot())
}

func TestSkip_LastExerciseCompletes(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())
	timer.Skip()
	timer.Skip()
	timer.Skip()

	snap := timer.Snapshot()
	assert.True(t, snap.Complete)
	assert.False(t, snap.Running)
	assert.Equal(t, 1, snap.CurrentIndex)
}

func TestReset_RestoresCurrentPhase(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*WorkoutTimer)
		wantPhase Phase
		wantIndex int
		wantLeft  int
	}{
		{
			name:      "work phase",
			setup:     func(tm *WorkoutTimer) { tm.Play(); tickN(tm, 10) },
			wantPhase: PhaseWork,
			wantIndex: 0,
			wantLeft:  45,
		},
		{
			name:      "rest phase",
			setup:     func(tm *WorkoutTimer) { tm.Play(); tickN(tm, 50) },
			wantPhase: PhaseRest,
			wantIndex: 0,
			wantLeft:  15,
		},
		{
			name:      "second exercise",
			setup:     func(tm *WorkoutTimer) { tm.Skip(); tm.Skip(); tm.Play(); tickN(tm, 7) },
			wantPhase: PhaseWork,
			wantIndex: 1,
			wantLeft:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := newTimer(t, twoExerciseLesson())
			tt.setup(timer)

			timer.Reset()

			assert.Equal(t, Snapshot{
				CurrentIndex:     tt.wantIndex,
				Phase:            tt.wantPhase,
				RemainingSeconds: tt.wantLeft,
				Running:          false,
			}, timer.Snapshot())
		})
	}
}

func TestComplete_IsTerminal(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())
	timer.Skip()
	timer.Skip()
	timer.Skip()
	require.True(t, timer.Snapshot().Complete)
	timer.DrainEvents()
	before := timer.Snapshot()

	timer.TogglePlay()
	timer.Play()
	tickN(timer, 100)
	timer.Skip()
	timer.Reset()

	assert.Equal(t, before, timer.Snapshot())
	assert.Empty(t, timer.DrainEvents())
}

func TestIndex_NeverDecreases(t *testing.T) {
	lesson := Lesson{ID: 1, Exercises: []Exercise{
		{ID: 1, WorkSeconds: 2, RestSeconds: 1},
		{ID: 2, WorkSeconds: 2, RestSeconds: 0},
		{ID: 3, WorkSeconds: 1, RestSeconds: 2},
	}}
	timer := newTimer(t, lesson)

	last := 0
	for i := 0; i < 50 && !timer.Snapshot().Complete; i++ {
		switch i % 4 {
		case 0:
			timer.Play()
		case 1:
			timer.Tick()
		case 2:
			timer.Reset()
		case 3:
			timer.Skip()
		}
		snap := timer.Snapshot()
		assert.GreaterOrEqual(t, snap.CurrentIndex, last)
		assert.GreaterOrEqual(t, snap.RemainingSeconds, 0)
		assert.LessOrEqual(t, snap.RemainingSeconds, timer.PhaseDuration())
		last = snap.CurrentIndex
	}
	assert.True(t, timer.Snapshot().Complete)
}

func TestExit_TearsDown(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())
	timer.Play()
	tickN(timer, 5)

	timer.Exit()

	snap := timer.Snapshot()
	assert.True(t, snap.Exited)
	assert.False(t, snap.Running)

	events := timer.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, TimerWorkoutExited, events[0].Kind)

	timer.Play()
	timer.Skip()
	tickN(timer, 5)
	timer.Exit()
	assert.Equal(t, snap, timer.Snapshot())
	assert.Empty(t, timer.DrainEvents())
}

func TestExit_AfterCompleteRecordsNothing(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())
	timer.Skip()
	timer.Skip()
	timer.Skip()
	timer.DrainEvents()

	timer.Exit()

	assert.Empty(t, timer.DrainEvents())
	assert.True(t, timer.Snapshot().Exited)
}

func TestTogglePlay(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())

	timer.TogglePlay()
	assert.True(t, timer.Snapshot().Running)
	timer.TogglePlay()
	assert.False(t, timer.Snapshot().Running)
	timer.Pause()
	assert.False(t, timer.Snapshot().Running)
}

func TestNextExercise(t *testing.T) {
	timer := newTimer(t, twoExerciseLesson())

	next, ok := timer.NextExercise()
	require.True(t, ok)
	assert.Equal(t, 20, next.ID)

	timer.Skip()
	timer.Skip()
	_, ok = timer.NextExercise()
	assert.False(t, ok)
	assert.Equal(t, 20, timer.CurrentExercise().ID)
}
