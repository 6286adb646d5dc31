package ports

import "github.com/lagreeflow/lagree/internal/domain"

// LessonFilter specifies criteria for listing lessons
type LessonFilter struct {
	Category string // Empty or "All" matches every category
	Query    string // Case-insensitive match on title or description
}

// LessonCatalog supplies the static lesson and exercise content
type LessonCatalog interface {
	// Categories returns the category names, starting with "All"
	Categories() []string
	// Exercise returns an exercise by id or domain.ErrExerciseNotFound
	Exercise(id int) (domain.Exercise, error)
	// Exercises returns every catalog exercise ordered by id
	Exercises() []domain.Exercise
	// Get returns a lesson by id or domain.ErrLessonNotFound
	Get(id int) (domain.Lesson, error)
	// List returns lessons matching the filter in catalog order
	List(filter LessonFilter) []domain.Lesson
}
