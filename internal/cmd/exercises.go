package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lagreeflow/lagree/internal/domain"
)

// ExercisesCmd browses the exercise library
type ExercisesCmd struct {
	List ExercisesListCmd `cmd:"list" help:"List exercises" default:"1"`
	View ExercisesViewCmd `cmd:"view" help:"Show how to perform an exercise, with equipment and modifications"`
}

// ExercisesListCmd lists exercises
type ExercisesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Muscle string `help:"Only show exercises targeting this muscle (case-insensitive)" short:"m"`
}

// ExercisesViewCmd views an exercise
type ExercisesViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     int    `arg:"" help:"Id of the exercise to view"`
}

// Run executes the list command
func (e *ExercisesListCmd) Run(cli *CLI) error {
	exercises := make([]domain.Exercise, 0)
	for _, ex := range cli.Container.Catalog.Exercises() {
		if e.Muscle == "" || targetsMuscle(ex, e.Muscle) {
			exercises = append(exercises, ex)
		}
	}

	if e.Format == "json" {
		return printJSON(toExercisesJSON(exercises))
	}

	if len(exercises) == 0 {
		fmt.Println("No exercises match.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tLevel\tWork\tRest\tTargets")
	fmt.Fprintln(w, "──\t────\t─────\t────\t────\t───────")
	for _, ex := range exercises {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			ex.ID,
			ex.Name,
			ex.Difficulty.Symbol(),
			domain.FormatClock(ex.WorkSeconds),
			restLabel(ex.RestSeconds),
			strings.Join(ex.TargetMuscles, ", "))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'lagree exercises view <id>' for instructions and modifications.")
	return nil
}

// Run executes the view command
func (e *ExercisesViewCmd) Run(cli *CLI) error {
	ex, err := cli.Container.Catalog.Exercise(e.ID)
	if err != nil {
		return fmt.Errorf("failed to get exercise: %w", err)
	}

	if e.Format == "json" {
		return printJSON(toExercisesJSON([]domain.Exercise{ex})[0])
	}

	fmt.Printf("Exercise %d: %s\n", ex.ID, ex.Name)
	fmt.Printf("Difficulty: %s %s\n", ex.Difficulty.Symbol(), ex.Difficulty)
	fmt.Printf("Timing: %s work, %s rest\n", domain.FormatClock(ex.WorkSeconds), restLabel(ex.RestSeconds))
	if ex.Description != "" {
		fmt.Printf("\n%s\n", ex.Description)
	}
	if len(ex.TargetMuscles) > 0 {
		fmt.Printf("\nTargets: %s\n", strings.Join(ex.TargetMuscles, ", "))
	}

	if len(ex.Instructions) > 0 {
		fmt.Printf("\nHow to perform:\n")
		for i, step := range ex.Instructions {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
	if len(ex.Tips) > 0 {
		fmt.Printf("\nTips:\n")
		for _, tip := range ex.Tips {
			fmt.Printf("  - %s\n", tip)
		}
	}
	if len(ex.Equipment) > 0 {
		fmt.Printf("\nEquipment: %s\n", strings.Join(ex.Equipment, ", "))
	}
	if ex.Modifications != nil {
		fmt.Printf("\nModifications:\n")
		fmt.Printf("  Easier: %s\n", ex.Modifications.Easier)
		fmt.Printf("  Harder: %s\n", ex.Modifications.Harder)
	}
	return nil
}

func targetsMuscle(ex domain.Exercise, muscle string) bool {
	for _, m := range ex.TargetMuscles {
		if strings.EqualFold(m, muscle) {
			return true
		}
	}
	return false
}

func restLabel(seconds int) string {
	if seconds == 0 {
		return "-"
	}
	return domain.FormatClock(seconds)
}
