// CLI tool to run one BMI calculation from the terminal, record it in the
// history store and optionally write the PDF report.
// Usage: go run ./cmd/bmi [-report BMI_Report.pdf]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lg/bmi-tracker/internal/config"
	"lg/bmi-tracker/internal/health"
	"lg/bmi-tracker/internal/report"
	"lg/bmi-tracker/internal/store"
)

func main() {
	reportPath := flag.String("report", "", "Write the PDF report to this path (e.g. "+report.Filename+")")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	s, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open record store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	comp, err := run(ctx, os.Stdin, os.Stdout, cfg.Calculator(), s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *reportPath != "" {
		pdf, err := report.Render(comp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*reportPath, pdf, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *reportPath)
	}
}

// inserter is the write half of the record store.
type inserter interface {
	Insert(ctx context.Context, weight, height, bmi float64, category string) (store.Record, error)
}

// run prompts for the form fields, prints the result and records it. A
// failed save is reported but the computation is still returned.
func run(ctx context.Context, in io.Reader, out io.Writer, calc health.Calculator, rs inserter) (*health.Computation, error) {
	reader := bufio.NewReader(in)
	prompt := func(label string) string {
		fmt.Fprint(out, label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	system, err := health.ParseUnitSystem(prompt("Unit (metric/imperial) [metric]: "))
	if err != nil {
		return nil, err
	}
	wUnit, hUnit := "kg", "m"
	if system == health.Imperial {
		wUnit, hUnit = "lbs", "inches"
	}

	name := prompt("Name: ")
	age, err := strconv.Atoi(prompt("Age: "))
	if err != nil {
		return nil, &health.ValidationError{Field: "age", Message: "must be a whole number"}
	}
	gender := health.ParseGender(prompt("Gender (Male/Female/Other): "))
	weight, err := strconv.ParseFloat(prompt("Weight ("+wUnit+"): "), 64)
	if err != nil {
		return nil, &health.ValidationError{Field: "weight", Message: "must be a number"}
	}
	height, err := strconv.ParseFloat(prompt("Height ("+hUnit+"): "), 64)
	if err != nil {
		return nil, &health.ValidationError{Field: "height", Message: "must be a number"}
	}

	comp, err := calc.Calculate(health.Input{
		System: system, Name: name, Age: age, Gender: gender, Weight: weight, Height: height,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "\nYour BMI: %.2f\n", comp.BMI)
	fmt.Fprintf(out, "Category: %s\n", comp.Category)
	fmt.Fprintf(out, "Health Tip: %s\n", comp.Tip)
	if comp.Calories != nil {
		fmt.Fprintf(out, "Recommended Daily Calorie Intake: %d kcal\n", *comp.Calories)
	}

	rec, err := rs.Insert(ctx, comp.WeightKG, comp.HeightM, comp.BMI, comp.Category)
	switch {
	case errors.Is(err, store.ErrPersist):
		fmt.Fprintf(out, "Warning: result not saved to history: %v\n", err)
	case err != nil:
		return comp, err
	default:
		fmt.Fprintf(out, "Saved as record #%d\n", rec.ID)
	}
	return comp, nil
}
