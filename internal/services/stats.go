package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
)

const (
	// statsCacheTTL is the duration to cache progress stats before refreshing
	statsCacheTTL = 60 * time.Second

	dayLayout = "2006-01-02"
)

// Achievement thresholds
const (
	consistencyKingStreakDays = 7
	monthlyHeroWorkouts       = 20
	timeMasterWeekMinutes     = 150
	weekWarriorWorkouts       = 5
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StatsService reduces the workout log into progress statistics with caching
type StatsService struct {
	cache       *domain.ProgressStats
	cacheDay    string
	cacheMu     sync.RWMutex
	clock       func() time.Time
	lastRefresh time.Time
	reader      ports.WorkoutLogReader
}

// NewStatsService creates a new StatsService
func NewStatsService(reader ports.WorkoutLogReader) *StatsService {
	return &StatsService{
		clock:  time.Now,
		reader: reader,
	}
}

// Invalidate drops the cached stats so the next Summary reloads the log
func (s *StatsService) Invalidate() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache = nil
}

// Summary returns the progress statistics as seen at now (cached).
// Days, weeks and months are computed in now's location.
func (s *StatsService) Summary(ctx context.Context, now time.Time) (domain.ProgressStats, error) {
	day := now.Format(dayLayout)

	s.cacheMu.RLock()
	if s.cacheValid(day) {
		stats := *s.cache
		s.cacheMu.RUnlock()
		return stats, nil
	}
	s.cacheMu.RUnlock()

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	// Double-check after acquiring write lock
	if s.cacheValid(day) {
		return *s.cache, nil
	}

	logging.Logger.Debug("Refreshing progress stats cache")

	events, err := s.reader.List(ctx, ports.WorkoutLogFilter{})
	if err != nil {
		logging.Logger.Warn("Failed to read workout log", "error", err)
		return domain.ProgressStats{}, fmt.Errorf("failed to read workout log: %w", err)
	}

	stats, err := reduceEvents(ctx, events, now)
	if err != nil {
		return domain.ProgressStats{}, err
	}

	s.cache = &stats
	s.cacheDay = day
	s.lastRefresh = s.clock()

	logging.Logger.Debug("Progress stats cache refreshed",
		"events", len(events),
		"workouts", stats.TotalWorkouts,
		"current_streak", stats.CurrentStreakDays)

	return stats, nil
}

// cacheValid must be called with cacheMu held
func (s *StatsService) cacheValid(day string) bool {
	return s.cache != nil && s.cacheDay == day && s.clock().Sub(s.lastRefresh) < statsCacheTTL
}

// reduceEvents aggregates totals, streaks, the current week and the current
// month concurrently over one snapshot of the log
func reduceEvents(ctx context.Context, events []domain.WorkoutEvent, now time.Time) (domain.ProgressStats, error) {
	var stats domain.ProgressStats
	loc := now.Location()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, e := range events {
			switch e.Kind {
			case domain.EventExerciseCompleted:
				stats.TotalExercises++
				stats.TotalWorkedSeconds += e.WorkedSeconds
			case domain.EventWorkoutCompleted:
				stats.TotalWorkouts++
			}
			if stats.MemberSince == nil || e.OccurredAt.Before(*stats.MemberSince) {
				since := e.OccurredAt.In(loc)
				stats.MemberSince = &since
			}
		}
		return ctx.Err()
	})

	g.Go(func() error {
		stats.CurrentStreakDays, stats.LongestStreakDays = streaks(events, now)
		return ctx.Err()
	})

	g.Go(func() error {
		stats.Week = weekDays(events, now)
		return ctx.Err()
	})

	g.Go(func() error {
		stats.MonthByWeek = monthWeeks(events, now)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return domain.ProgressStats{}, fmt.Errorf("failed to reduce workout log: %w", err)
	}

	stats.Achievements = achievements(stats, events, now)
	return stats, nil
}

// completedDays returns the distinct local days that have a completed workout
func completedDays(events []domain.WorkoutEvent, loc *time.Location) map[string]bool {
	days := make(map[string]bool)
	for _, e := range events {
		if e.Kind == domain.EventWorkoutCompleted {
			days[e.OccurredAt.In(loc).Format(dayLayout)] = true
		}
	}
	return days
}

// streaks returns the current and longest runs of consecutive completed days.
// The current streak may end today or yesterday.
func streaks(events []domain.WorkoutEvent, now time.Time) (current, longest int) {
	days := completedDays(events, now.Location())
	if len(days) == 0 {
		return 0, 0
	}

	sorted := make([]string, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	run := 0
	var prev time.Time
	for _, d := range sorted {
		day, _ := time.ParseInLocation(dayLayout, d, now.Location())
		if run > 0 && prev.AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = day
	}

	cursor := startOfDay(now)
	if !days[cursor.Format(dayLayout)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for days[cursor.Format(dayLayout)] {
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return current, longest
}

// weekDays summarizes Monday through Sunday of the week containing now
func weekDays(events []domain.WorkoutEvent, now time.Time) []domain.DayStat {
	monday := startOfWeek(now)
	week := make([]domain.DayStat, 7)
	seconds := make([]int, 7)

	for i := range week {
		week[i].Day = weekdayLabels[i]
	}

	for _, e := range events {
		at := e.OccurredAt.In(now.Location())
		if at.Before(monday) || !at.Before(monday.AddDate(0, 0, 7)) {
			continue
		}
		idx := daysBetween(monday, at)
		switch e.Kind {
		case domain.EventExerciseCompleted:
			seconds[idx] += e.WorkedSeconds
		case domain.EventWorkoutCompleted:
			week[idx].Completed = true
		}
	}

	for i := range week {
		week[i].Minutes = seconds[i] / 60
	}
	return week
}

// monthWeeks breaks the month containing now into Monday-based weeks.
// Only events inside the month are counted.
func monthWeeks(events []domain.WorkoutEvent, now time.Time) []domain.WeekStat {
	loc := now.Location()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	firstMonday := startOfWeek(monthStart)
	var weeks []domain.WeekStat
	for start := firstMonday; start.Before(monthEnd); start = start.AddDate(0, 0, 7) {
		weeks = append(weeks, domain.WeekStat{Label: fmt.Sprintf("Week %d", len(weeks)+1)})
	}
	seconds := make([]int, len(weeks))

	for _, e := range events {
		at := e.OccurredAt.In(loc)
		if at.Before(monthStart) || !at.Before(monthEnd) {
			continue
		}
		idx := daysBetween(firstMonday, at) / 7
		if idx < 0 || idx >= len(weeks) {
			continue
		}
		switch e.Kind {
		case domain.EventExerciseCompleted:
			seconds[idx] += e.WorkedSeconds
		case domain.EventWorkoutCompleted:
			weeks[idx].Workouts++
		}
	}

	for i := range weeks {
		weeks[i].Minutes = seconds[i] / 60
	}
	return weeks
}

func achievements(stats domain.ProgressStats, events []domain.WorkoutEvent, now time.Time) []domain.Achievement {
	monday := startOfWeek(now)
	weekWorkouts := 0
	weekSeconds := 0
	for _, e := range events {
		at := e.OccurredAt.In(now.Location())
		if at.Before(monday) || !at.Before(monday.AddDate(0, 0, 7)) {
			continue
		}
		switch e.Kind {
		case domain.EventExerciseCompleted:
			weekSeconds += e.WorkedSeconds
		case domain.EventWorkoutCompleted:
			weekWorkouts++
		}
	}

	monthWorkouts := 0
	for _, w := range stats.MonthByWeek {
		monthWorkouts += w.Workouts
	}

	return []domain.Achievement{
		{
			Title:       "Week Warrior",
			Description: fmt.Sprintf("Complete %d workouts in a week", weekWarriorWorkouts),
			Earned:      weekWorkouts >= weekWarriorWorkouts,
		},
		{
			Title:       "Consistency King",
			Description: fmt.Sprintf("%d-day workout streak", consistencyKingStreakDays),
			Earned:      stats.LongestStreakDays >= consistencyKingStreakDays,
		},
		{
			Title:       "Time Master",
			Description: fmt.Sprintf("%d+ minutes in a week", timeMasterWeekMinutes),
			Earned:      weekSeconds/60 >= timeMasterWeekMinutes,
		},
		{
			Title:       "Monthly Hero",
			Description: fmt.Sprintf("Complete %d workouts in a month", monthlyHeroWorkouts),
			Earned:      monthWorkouts >= monthlyHeroWorkouts,
		},
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring DST shifts
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// startOfWeek returns the Monday 00:00 of t's week
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
