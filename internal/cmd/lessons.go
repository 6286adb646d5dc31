package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/ports"
)

// LessonsCmd browses the lesson catalog
type LessonsCmd struct {
	List LessonsListCmd `cmd:"list" help:"List lessons" default:"1"`
	View LessonsViewCmd `cmd:"view" help:"View a lesson and its exercises"`
}

// LessonsListCmd lists lessons
type LessonsListCmd struct {
	Category string `help:"Only show lessons in this category" short:"c"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Query    string `help:"Match title or description (case-insensitive)" short:"q"`
}

// LessonsViewCmd views a lesson
type LessonsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     int    `arg:"" help:"Id of the lesson to view"`
}

// exerciseJSON is the JSON shape of an exercise
type exerciseJSON struct {
	Description   string             `json:"description,omitempty"`
	Difficulty    string             `json:"difficulty,omitempty"`
	Equipment     []string           `json:"equipment,omitempty"`
	ID            int                `json:"id"`
	Instructions  []string           `json:"instructions,omitempty"`
	Modifications *modificationsJSON `json:"modifications,omitempty"`
	Name          string             `json:"name"`
	RestSeconds   int                `json:"rest_seconds"`
	TargetMuscles []string           `json:"target_muscles,omitempty"`
	Tips          []string           `json:"tips,omitempty"`
	WorkSeconds   int                `json:"work_seconds"`
}

type modificationsJSON struct {
	Easier string `json:"easier"`
	Harder string `json:"harder"`
}

// lessonJSON is the JSON shape of a lesson
type lessonJSON struct {
	Category           string         `json:"category"`
	CoolDown           []exerciseJSON `json:"cool_down,omitempty"`
	Description        string         `json:"description,omitempty"`
	Difficulty         string         `json:"difficulty"`
	DurationMinutes    int            `json:"duration_minutes"`
	Exercises          []exerciseJSON `json:"exercises"`
	ID                 int            `json:"id"`
	LearningObjectives []string       `json:"learning_objectives,omitempty"`
	Title              string         `json:"title"`
	WarmUp             []exerciseJSON `json:"warm_up,omitempty"`
}

func toExercisesJSON(exercises []domain.Exercise) []exerciseJSON {
	out := make([]exerciseJSON, 0, len(exercises))
	for _, ex := range exercises {
		var mods *modificationsJSON
		if ex.Modifications != nil {
			mods = &modificationsJSON{Easier: ex.Modifications.Easier, Harder: ex.Modifications.Harder}
		}
		out = append(out, exerciseJSON{
			Description:   ex.Description,
			Difficulty:    string(ex.Difficulty),
			Equipment:     ex.Equipment,
			ID:            ex.ID,
			Instructions:  ex.Instructions,
			Modifications: mods,
			Name:          ex.Name,
			RestSeconds:   ex.RestSeconds,
			TargetMuscles: ex.TargetMuscles,
			Tips:          ex.Tips,
			WorkSeconds:   ex.WorkSeconds,
		})
	}
	return out
}

func toLessonJSON(l domain.Lesson) lessonJSON {
	return lessonJSON{
		Category:           l.Category,
		CoolDown:           toExercisesJSON(l.CoolDown),
		Description:        l.Description,
		Difficulty:         string(l.Difficulty),
		DurationMinutes:    l.DurationMinutes,
		Exercises:          toExercisesJSON(l.Exercises),
		ID:                 l.ID,
		LearningObjectives: l.LearningObjectives,
		Title:              l.Title,
		WarmUp:             toExercisesJSON(l.WarmUp),
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// Run executes the list command
func (l *LessonsListCmd) Run(cli *CLI) error {
	lessons := cli.Container.Catalog.List(ports.LessonFilter{
		Category: l.Category,
		Query:    l.Query,
	})

	if l.Format == "json" {
		out := make([]lessonJSON, 0, len(lessons))
		for _, lesson := range lessons {
			out = append(out, toLessonJSON(lesson))
		}
		return printJSON(out)
	}

	if len(lessons) == 0 {
		fmt.Println("No lessons match.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tCategory\tLevel\tMinutes\tExercises")
	fmt.Fprintln(w, "──\t─────\t────────\t─────\t───────\t─────────")
	for _, lesson := range lessons {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n",
			lesson.ID,
			lesson.Title,
			lesson.Category,
			lesson.Difficulty.Symbol(),
			lesson.DurationMinutes,
			len(lesson.Exercises))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'lagree lessons view <id>' for details or 'lagree start <id>' to begin.")
	return nil
}

// Run executes the view command
func (l *LessonsViewCmd) Run(cli *CLI) error {
	lesson, err := cli.Container.Catalog.Get(l.ID)
	if err != nil {
		return fmt.Errorf("failed to get lesson: %w", err)
	}

	if l.Format == "json" {
		return printJSON(toLessonJSON(lesson))
	}
	return l.printTable(lesson)
}

func (l *LessonsViewCmd) printTable(lesson domain.Lesson) error {
	fmt.Printf("Lesson %d: %s\n", lesson.ID, lesson.Title)
	fmt.Printf("Category: %s\n", lesson.Category)
	fmt.Printf("Difficulty: %s %s\n", lesson.Difficulty.Symbol(), lesson.Difficulty)
	fmt.Printf("Duration: %d min\n", lesson.DurationMinutes)
	if lesson.Description != "" {
		fmt.Printf("\n%s\n", lesson.Description)
	}

	if len(lesson.LearningObjectives) > 0 {
		fmt.Printf("\nObjectives:\n")
		for _, o := range lesson.LearningObjectives {
			fmt.Printf("  - %s\n", o)
		}
	}

	printUntimed("Warm-up", lesson.WarmUp)

	fmt.Printf("\nExercises:\n")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  #\tName\tWork\tRest\tTargets")
	for i, ex := range lesson.Exercises {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n",
			i+1,
			ex.Name,
			domain.FormatClock(ex.WorkSeconds),
			restLabel(ex.RestSeconds),
			strings.Join(ex.TargetMuscles, ", "))
	}
	w.Flush()

	printUntimed("Cool-down", lesson.CoolDown)
	return nil
}

func printUntimed(title string, exercises []domain.Exercise) {
	if len(exercises) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, ex := range exercises {
		fmt.Printf("  - %s\n", ex.Name)
	}
}
