package domain

import "time"

// DayStat summarizes one weekday of the current week
type DayStat struct {
	Completed bool
	Day       string // Mon..Sun
	Minutes   int
}

// WeekStat summarizes one ISO week
type WeekStat struct {
	Label    string // e.g. "Week 3"
	Minutes  int
	Workouts int
}

// Achievement is a milestone derived from the workout log
type Achievement struct {
	Description string
	Earned      bool
	Title       string
}

// ProgressStats aggregates the workout log for progress and profile views
type ProgressStats struct {
	Achievements       []Achievement
	CurrentStreakDays  int
	LongestStreakDays  int
	MemberSince        *time.Time // nil until the first event is recorded
	MonthByWeek        []WeekStat
	TotalExercises     int
	TotalWorkedSeconds int
	TotalWorkouts      int
	Week               []DayStat
}

// WeekMinutes returns the minutes worked across the current week
func (p ProgressStats) WeekMinutes() int {
	total := 0
	for _, d := range p.Week {
		total += d.Minutes
	}
	return total
}

// WeekCompletedDays returns how many days of the current week had a completed workout
func (p ProgressStats) WeekCompletedDays() int {
	count := 0
	for _, d := range p.Week {
		if d.Completed {
			count++
		}
	}
	return count
}
