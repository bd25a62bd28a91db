package health

import (
	"errors"
	"math"
	"testing"
)

func validInput() Input {
	return Input{System: Metric, Name: "Ada", Age: 30, Gender: Male, Weight: 90, Height: 1.70}
}

func TestCalculate_Success(t *testing.T) {
	comp, err := NewCalculator().Calculate(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Calories == nil || *comp.Calories != 1818 {
		t.Errorf("calories = %v, want 1818", comp.Calories)
	}
	if math.Abs(comp.BMI-31.14) > 0.01 {
		t.Errorf("bmi = %.3f, want ~31.14", comp.BMI)
	}
	if comp.Category != CategoryObese {
		t.Errorf("category = %q, want %q", comp.Category, CategoryObese)
	}
	if comp.Name != "Ada" || comp.Age != 30 || comp.Gender != Male {
		t.Errorf("identity fields not carried: %+v", comp)
	}
}

func TestCalculate_ImperialIsNormalized(t *testing.T) {
	in := validInput()
	in.System, in.Weight, in.Height = Imperial, 150, 70
	comp, err := NewCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(comp.WeightKG-68.0388) > 1e-4 || math.Abs(comp.HeightM-1.778) > 1e-9 {
		t.Errorf("measurement not normalized: %.4f kg %.4f m", comp.WeightKG, comp.HeightM)
	}
}

// TestCalculate_ValidationErrors checks that every rejected field surfaces as
// a *ValidationError matching ErrInvalidInput.
func TestCalculate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mutFn func(in *Input)
	}{
		{"age too low", "age", func(in *Input) { in.Age = 9 }},
		{"age too high", "age", func(in *Input) { in.Age = 121 }},
		{"zero weight", "weight", func(in *Input) { in.Weight = 0 }},
		{"negative weight", "weight", func(in *Input) { in.Weight = -5 }},
		{"NaN weight", "weight", func(in *Input) { in.Weight = math.NaN() }},
		{"zero height", "height", func(in *Input) { in.Height = 0 }},
		{"metric height below 0.5m", "height", func(in *Input) { in.Height = 0.49 }},
		{"imperial height below 10in", "height", func(in *Input) { in.System, in.Weight, in.Height = Imperial, 150, 9.9 }},
		{"infinite weight", "weight", func(in *Input) { in.Weight = math.Inf(1) }},
		{"metric height above 3m", "height", func(in *Input) { in.Height = 3.01 }},
		{"huge height", "height", func(in *Input) { in.Height = 1e300 }},
		{"infinite height", "height", func(in *Input) { in.Height = math.Inf(1) }},
		{"NaN height", "height", func(in *Input) { in.Height = math.NaN() }},
		{"imperial height above 120in", "height", func(in *Input) { in.System, in.Weight, in.Height = Imperial, 150, 121 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutFn(&in)
			comp, err := NewCalculator().Calculate(in)
			if comp != nil {
				t.Errorf("expected no computation, got %+v", comp)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Errorf("error field = %v, want %q", err, tc.field)
			}
		})
	}
}

// TestCalculate_StandardBreakpoints: 75kg/1.735m gives BMI ~24.92, Obese under
// the legacy table but Normal under standard breakpoints.
func TestCalculate_StandardBreakpoints(t *testing.T) {
	in := validInput()
	in.Weight, in.Height = 75, 1.735

	legacy, err := NewCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if legacy.Category != CategoryObese {
		t.Errorf("legacy category = %q, want %q (bmi %.3f)", legacy.Category, CategoryObese, legacy.BMI)
	}

	calc := NewCalculator()
	calc.Classifier.Breakpoints = BreakpointsStandard
	std, err := calc.Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if std.Category != CategoryNormal {
		t.Errorf("standard category = %q, want %q", std.Category, CategoryNormal)
	}
}
