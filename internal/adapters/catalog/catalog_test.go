package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/ports"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := NewEmbedded()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"All", "Foundation", "Core", "Lower Body", "Upper Body", "Full Body", "Quick", "Challenge",
	}, c.Categories())
	assert.Len(t, c.List(ports.LessonFilter{}), 6)

	lesson, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Lagree Fundamentals", lesson.Title)
	require.Len(t, lesson.Exercises, 3)
	assert.Equal(t, "Slow Motion Squats", lesson.Exercises[0].Name)
	assert.Equal(t, 60, lesson.Exercises[0].WorkSeconds)
	assert.Equal(t, 15, lesson.Exercises[0].RestSeconds)
	require.Len(t, lesson.WarmUp, 1)
	assert.Equal(t, 101, lesson.WarmUp[0].ID)
	require.Len(t, lesson.CoolDown, 1)
	assert.Equal(t, "Relaxation Stretch", lesson.CoolDown[0].Name)

	challenge, err := c.Get(6)
	require.NoError(t, err)
	ids := make([]int, len(challenge.Exercises))
	for i, ex := range challenge.Exercises {
		ids[i] = ex.ID
	}
	assert.Equal(t, []int{1, 4, 7, 8, 5}, ids)
}

func TestGetUnknownLesson(t *testing.T) {
	c, err := NewEmbedded()
	require.NoError(t, err)

	_, err = c.Get(99)
	assert.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestExercise(t *testing.T) {
	c, err := NewEmbedded()
	require.NoError(t, err)

	ex, err := c.Exercise(7)
	require.NoError(t, err)
	assert.Equal(t, "Bear Crawl Hold", ex.Name)
	assert.Equal(t, domain.DifficultyAdvanced, ex.Difficulty)
	require.NotNil(t, ex.Modifications)
	assert.Equal(t, "Add leg lifts or arm reaches", ex.Modifications.Harder)

	_, err = c.Exercise(101)
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}

func TestExercisesOrderedByID(t *testing.T) {
	c, err := Parse([]byte(`
exercises:
  - {id: 3, name: Third, work_seconds: 10}
  - {id: 1, name: First, work_seconds: 10}
  - {id: 2, name: Second, work_seconds: 10}
lessons:
  - {id: 1, title: Mixed, category: Core, exercises: [3, 1]}
`))
	require.NoError(t, err)

	exercises := c.Exercises()
	require.Len(t, exercises, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{exercises[0].Name, exercises[1].Name, exercises[2].Name})
}

func TestListFilter(t *testing.T) {
	c, err := NewEmbedded()
	require.NoError(t, err)

	tests := []struct {
		name     string
		filter   ports.LessonFilter
		expected []int
	}{
		{"all", ports.LessonFilter{Category: "All"}, []int{1, 2, 3, 4, 5, 6}},
		{"category", ports.LessonFilter{Category: "Core"}, []int{2}},
		{"empty category", ports.LessonFilter{Category: "Upper Body"}, []int{}},
		{"query title", ports.LessonFilter{Query: "flow"}, []int{2, 4}},
		{"query description", ports.LessonFilter{Query: "experienced"}, []int{6}},
		{"category and query", ports.LessonFilter{Category: "Full Body", Query: "core"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessons := c.List(tt.filter)
			ids := make([]int, 0, len(lessons))
			for _, l := range lessons {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "duplicate exercise",
			yaml: `
exercises:
  - {id: 1, name: A, work_seconds: 10}
  - {id: 1, name: B, work_seconds: 10}
lessons: []
`,
		},
		{
			name: "duplicate lesson",
			yaml: `
exercises:
  - {id: 1, name: A, work_seconds: 10}
lessons:
  - {id: 1, title: L, exercises: [1]}
  - {id: 1, title: M, exercises: [1]}
`,
		},
		{
			name: "unknown exercise",
			yaml: `
exercises:
  - {id: 1, name: A, work_seconds: 10}
lessons:
  - {id: 1, title: L, exercises: [2]}
`,
		},
		{
			name: "no exercises",
			yaml: `
exercises: []
lessons:
  - {id: 1, title: L, exercises: []}
`,
		},
		{
			name: "zero work",
			yaml: `
exercises:
  - {id: 1, name: A, work_seconds: 0}
lessons:
  - {id: 1, title: L, exercises: [1]}
`,
		},
		{
			name: "negative rest",
			yaml: `
exercises:
  - {id: 1, name: A, work_seconds: 10, rest_seconds: -1}
lessons:
  - {id: 1, title: L, exercises: [1]}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, domain.ErrInvalidLesson)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("lessons: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidLesson)
}

func TestCategoriesDerivedFromLessons(t *testing.T) {
	c, err := Parse([]byte(`
exercises:
  - {id: 1, name: A, work_seconds: 10}
lessons:
  - {id: 1, title: L, category: Core, exercises: [1]}
  - {id: 2, title: M, category: Quick, exercises: [1]}
  - {id: 3, title: N, category: Core, exercises: [1]}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Core", "Quick"}, c.Categories())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
exercises:
  - {id: 5, name: Hold, work_seconds: 3, rest_seconds: 0}
lessons:
  - {id: 9, title: Tiny, exercises: [5, 5]}
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	lesson, err := c.Get(9)
	require.NoError(t, err)
	assert.Equal(t, 6, lesson.TimedSeconds())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
