package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/ports"
)

//go:embed lessons.yaml
var embeddedCatalog []byte

type exerciseDoc struct {
	Description   string            `yaml:"description"`
	Difficulty    string            `yaml:"difficulty"`
	Equipment     []string          `yaml:"equipment"`
	ID            int               `yaml:"id"`
	Instructions  []string          `yaml:"instructions"`
	Modifications *modificationsDoc `yaml:"modifications"`
	Name          string            `yaml:"name"`
	RestSeconds   int               `yaml:"rest_seconds"`
	TargetMuscles []string          `yaml:"target_muscles"`
	Tips          []string          `yaml:"tips"`
	WorkSeconds   int               `yaml:"work_seconds"`
}

type modificationsDoc struct {
	Easier string `yaml:"easier"`
	Harder string `yaml:"harder"`
}

type lessonDoc struct {
	Category           string        `yaml:"category"`
	CoolDown           []exerciseDoc `yaml:"cool_down"`
	Description        string        `yaml:"description"`
	Difficulty         string        `yaml:"difficulty"`
	DurationMinutes    int           `yaml:"duration_minutes"`
	Exercises          []int         `yaml:"exercises"`
	ID                 int           `yaml:"id"`
	LearningObjectives []string      `yaml:"learning_objectives"`
	Title              string        `yaml:"title"`
	WarmUp             []exerciseDoc `yaml:"warm_up"`
}

type catalogDoc struct {
	Categories []string      `yaml:"categories"`
	Exercises  []exerciseDoc `yaml:"exercises"`
	Lessons    []lessonDoc   `yaml:"lessons"`
}

// Catalog implements ports.LessonCatalog over an in-memory, validated document
type Catalog struct {
	categories []string
	exercises  map[int]domain.Exercise
	lessons    []domain.Lesson
}

var _ ports.LessonCatalog = (*Catalog)(nil)

// NewEmbedded loads the catalog compiled into the binary
func NewEmbedded() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		categories: categoriesOf(doc),
		exercises:  make(map[int]domain.Exercise, len(doc.Exercises)),
	}

	for _, e := range doc.Exercises {
		if _, exists := c.exercises[e.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate exercise id %d", domain.ErrInvalidLesson, e.ID)
		}
		c.exercises[e.ID] = e.toDomain()
	}

	seen := make(map[int]bool, len(doc.Lessons))
	for _, l := range doc.Lessons {
		if seen[l.ID] {
			return nil, fmt.Errorf("%w: duplicate lesson id %d", domain.ErrInvalidLesson, l.ID)
		}
		seen[l.ID] = true

		lesson, err := c.resolveLesson(l)
		if err != nil {
			return nil, err
		}
		if err := lesson.Validate(); err != nil {
			return nil, err
		}
		c.lessons = append(c.lessons, lesson)
	}

	return c, nil
}

// Categories returns the category names, starting with "All"
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Exercise returns an exercise by id
func (c *Catalog) Exercise(id int) (domain.Exercise, error) {
	ex, ok := c.exercises[id]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%w: %d", domain.ErrExerciseNotFound, id)
	}
	return ex, nil
}

// Exercises returns every catalog exercise ordered by id.
// Warm-up and cool-down moves belong to their lesson and are not included.
func (c *Catalog) Exercises() []domain.Exercise {
	result := make([]domain.Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		result = append(result, ex)
	}
	slices.SortFunc(result, func(a, b domain.Exercise) int {
		return a.ID - b.ID
	})
	return result
}

// Get returns a lesson by id
func (c *Catalog) Get(id int) (domain.Lesson, error) {
	for _, l := range c.lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Lesson{}, fmt.Errorf("%w: %d", domain.ErrLessonNotFound, id)
}

// List returns lessons matching the filter in catalog order
func (c *Catalog) List(filter ports.LessonFilter) []domain.Lesson {
	result := make([]domain.Lesson, 0, len(c.lessons))
	for _, l := range c.lessons {
		if l.Matches(filter.Category, filter.Query) {
			result = append(result, l)
		}
	}
	return result
}

func (c *Catalog) resolveLesson(l lessonDoc) (domain.Lesson, error) {
	lesson := domain.Lesson{
		Category:           l.Category,
		CoolDown:           toDomainExercises(l.CoolDown),
		Description:        l.Description,
		Difficulty:         domain.Difficulty(l.Difficulty),
		DurationMinutes:    l.DurationMinutes,
		ID:                 l.ID,
		LearningObjectives: l.LearningObjectives,
		Title:              l.Title,
		WarmUp:             toDomainExercises(l.WarmUp),
	}

	for _, id := range l.Exercises {
		ex, ok := c.exercises[id]
		if !ok {
			return domain.Lesson{}, fmt.Errorf("%w: lesson %d references unknown exercise %d",
				domain.ErrInvalidLesson, l.ID, id)
		}
		lesson.Exercises = append(lesson.Exercises, ex)
	}

	return lesson, nil
}

// categoriesOf returns the declared categories, or the distinct lesson
// categories in order of appearance when none are declared. "All" always leads.
func categoriesOf(doc catalogDoc) []string {
	declared := doc.Categories
	if len(declared) == 0 {
		for _, l := range doc.Lessons {
			if l.Category != "" && !slices.Contains(declared, l.Category) {
				declared = append(declared, l.Category)
			}
		}
	}

	categories := []string{domain.CategoryAll}
	for _, name := range declared {
		if name != domain.CategoryAll {
			categories = append(categories, name)
		}
	}
	return categories
}

func (e exerciseDoc) toDomain() domain.Exercise {
	ex := domain.Exercise{
		Description:   e.Description,
		Difficulty:    domain.Difficulty(e.Difficulty),
		Equipment:     e.Equipment,
		ID:            e.ID,
		Instructions:  e.Instructions,
		Name:          e.Name,
		RestSeconds:   e.RestSeconds,
		TargetMuscles: e.TargetMuscles,
		Tips:          e.Tips,
		WorkSeconds:   e.WorkSeconds,
	}
	if e.Modifications != nil {
		ex.Modifications = &domain.Modifications{
			Easier: e.Modifications.Easier,
			Harder: e.Modifications.Harder,
		}
	}
	return ex
}

func toDomainExercises(docs []exerciseDoc) []domain.Exercise {
	if len(docs) == 0 {
		return nil
	}
	result := make([]domain.Exercise, len(docs))
	for i, d := range docs {
		result[i] = d.toDomain()
	}
	return result
}
