package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
	portsmocks "github.com/lagreeflow/lagree/internal/ports/mocks"
)

// statsNow is Wednesday 2026-03-11; its week starts Monday 2026-03-09
var statsNow = time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 9, 0, 0, 0, time.UTC)
}

// completedWorkout returns the events of one finished single-exercise session
func completedWorkout(at time.Time, workedSeconds int) []domain.WorkoutEvent {
	return []domain.WorkoutEvent{
		{Kind: domain.EventExerciseCompleted, OccurredAt: at, WorkedSeconds: workedSeconds, ExerciseID: 1},
		{Kind: domain.EventWorkoutCompleted, OccurredAt: at.Add(time.Minute), WorkedSeconds: workedSeconds},
	}
}

func buildLog(workouts ...[]domain.WorkoutEvent) []domain.WorkoutEvent {
	var events []domain.WorkoutEvent
	for _, w := range workouts {
		events = append(events, w...)
	}
	return events
}

func TestSummary_Reduction(t *testing.T) {
	var workouts [][]domain.WorkoutEvent
	// Eight consecutive days in February
	for d := 20; d <= 27; d++ {
		workouts = append(workouts, completedWorkout(day(time.February, d), 600))
	}
	workouts = append(workouts,
		completedWorkout(day(time.March, 2), 600),
		completedWorkout(day(time.March, 9), 600),
		completedWorkout(day(time.March, 10), 600),
		completedWorkout(day(time.March, 11), 600),
	)
	events := buildLog(workouts...)
	// An exited session counts toward neither workouts nor streaks
	events = append(events, domain.WorkoutEvent{Kind: domain.EventWorkoutExited, OccurredAt: day(time.March, 12)})

	reader := portsmocks.NewMockWorkoutLogRepository(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(events, nil)

	stats, err := NewStatsService(reader).Summary(context.Background(), statsNow)
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalWorkouts)
	assert.Equal(t, 12, stats.TotalExercises)
	assert.Equal(t, 12*600, stats.TotalWorkedSeconds)
	require.NotNil(t, stats.MemberSince)
	assert.True(t, day(time.February, 20).Equal(*stats.MemberSince))

	assert.Equal(t, 3, stats.CurrentStreakDays)
	assert.Equal(t, 8, stats.LongestStreakDays)

	require.Len(t, stats.Week, 7)
	assert.Equal(t, "Mon", stats.Week[0].Day)
	assert.Equal(t, "Sun", stats.Week[6].Day)
	for i, d := range stats.Week {
		if i <= 2 {
			assert.True(t, d.Completed, d.Day)
			assert.Equal(t, 10, d.Minutes, d.Day)
		} else {
			assert.False(t, d.Completed, d.Day)
			assert.Equal(t, 0, d.Minutes, d.Day)
		}
	}
	assert.Equal(t, 30, stats.WeekMinutes())
	assert.Equal(t, 3, stats.WeekCompletedDays())

	// March 2026 starts on a Sunday, so the first week begins Feb 23
	require.Len(t, stats.MonthByWeek, 6)
	assert.Equal(t, domain.WeekStat{Label: "Week 1", Minutes: 0, Workouts: 0}, stats.MonthByWeek[0])
	assert.Equal(t, domain.WeekStat{Label: "Week 2", Minutes: 10, Workouts: 1}, stats.MonthByWeek[1])
	assert.Equal(t, domain.WeekStat{Label: "Week 3", Minutes: 30, Workouts: 3}, stats.MonthByWeek[2])

	earned := map[string]bool{}
	for _, a := range stats.Achievements {
		earned[a.Title] = a.Earned
	}
	assert.Equal(t, map[string]bool{
		"Week Warrior":     false,
		"Consistency King": true,
		"Time Master":      false,
		"Monthly Hero":     false,
	}, earned)
}

func TestSummary_WeeklyAchievements(t *testing.T) {
	var workouts [][]domain.WorkoutEvent
	for d := 9; d <= 11; d++ {
		workouts = append(workouts, completedWorkout(day(time.March, d), 1800))
		workouts = append(workouts, completedWorkout(day(time.March, d).Add(3*time.Hour), 1500))
	}

	reader := portsmocks.NewMockWorkoutLogRepository(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(buildLog(workouts...), nil)

	stats, err := NewStatsService(reader).Summary(context.Background(), statsNow)
	require.NoError(t, err)

	earned := map[string]bool{}
	for _, a := range stats.Achievements {
		earned[a.Title] = a.Earned
	}
	assert.True(t, earned["Week Warrior"])
	assert.True(t, earned["Time Master"])
	assert.False(t, earned["Consistency King"])
	assert.Equal(t, 165, stats.WeekMinutes())
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name            string
		days            []time.Time
		expectedCurrent int
		expectedLongest int
	}{
		{"empty", nil, 0, 0},
		{"today only", []time.Time{day(time.March, 11)}, 1, 1},
		{"ends yesterday", []time.Time{day(time.March, 9), day(time.March, 10)}, 2, 2},
		{"broken two days ago", []time.Time{day(time.March, 8), day(time.March, 9)}, 0, 2},
		{"across month boundary", []time.Time{day(time.February, 28), day(time.March, 1), day(time.March, 2)}, 0, 3},
		{"same day twice", []time.Time{day(time.March, 11), day(time.March, 11).Add(time.Hour)}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []domain.WorkoutEvent
			for _, d := range tt.days {
				events = append(events, domain.WorkoutEvent{Kind: domain.EventWorkoutCompleted, OccurredAt: d})
			}
			current, longest := streaks(events, statsNow)
			assert.Equal(t, tt.expectedCurrent, current)
			assert.Equal(t, tt.expectedLongest, longest)
		})
	}
}

func TestSummary_EmptyLog(t *testing.T) {
	reader := portsmocks.NewMockWorkoutLogRepository(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	stats, err := NewStatsService(reader).Summary(context.Background(), statsNow)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalWorkouts)
	assert.Nil(t, stats.MemberSince)
	assert.Len(t, stats.Week, 7)
	assert.Len(t, stats.Achievements, 4)
	for _, a := range stats.Achievements {
		assert.False(t, a.Earned, a.Title)
	}
}

func TestSummary_CacheHit(t *testing.T) {
	reader := portsmocks.NewMockWorkoutLogRepository(t)
	// Only expect one call - second call should use cache
	reader.EXPECT().List(mock.Anything, mock.Anything).
		Return(completedWorkout(day(time.March, 10), 60), nil).Once()

	service := NewStatsService(reader)

	first, err := service.Summary(context.Background(), statsNow)
	require.NoError(t, err)
	second, err := service.Summary(context.Background(), statsNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSummary_InvalidateAndExpiry(t *testing.T) {
	reader := portsmocks.NewMockWorkoutLogRepository(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Times(3)

	clock := statsNow
	service := NewStatsService(reader)
	service.clock = func() time.Time { return clock }
	ctx := context.Background()

	_, err := service.Summary(ctx, statsNow)
	require.NoError(t, err)

	service.Invalidate()
	_, err = service.Summary(ctx, statsNow)
	require.NoError(t, err)

	clock = clock.Add(statsCacheTTL + time.Second)
	_, err = service.Summary(ctx, statsNow)
	require.NoError(t, err)
}

func TestSummary_NewDayRefreshes(t *testing.T) {
	reader := portsmocks.NewMockWorkoutLogRepository(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Twice()

	service := NewStatsService(reader)
	ctx := context.Background()

	_, err := service.Summary(ctx, statsNow)
	require.NoError(t, err)
	_, err = service.Summary(ctx, statsNow.AddDate(0, 0, 1))
	require.NoError(t, err)
}

func TestSummary_ReaderError(t *testing.T) {
	reader := portsmocks.NewMockWorkoutLogRepository(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("read error"))

	_, err := NewStatsService(reader).Summary(context.Background(), statsNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read error")
}

func TestStartOfWeek(t *testing.T) {
	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), startOfWeek(day(time.March, 9)))
}
