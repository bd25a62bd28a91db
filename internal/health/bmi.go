package health

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMeasurement is returned when weight or height is not strictly positive.
var ErrInvalidMeasurement = errors.New("weight and height must be greater than zero")

// Category labels. These strings are persisted in bmi_records.category.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// tips maps each category to the advice shown with the result.
var tips = map[string]string{
	CategoryUnderweight: "Increase protein intake and exercise.",
	CategoryNormal:      "Maintain a balanced diet.",
	CategoryOverweight:  "Reduce sugar intake and increase cardio.",
	CategoryObese:       "Consider a structured fitness program.",
}

// Tip returns the health tip for a category label, or "" for unknown labels.
func Tip(category string) string { return tips[category] }

// Breakpoints selects the category boundaries used by a Classifier.
type Breakpoints string

const (
	// BreakpointsLegacy reproduces the historical table: Normal stops at 24.9
	// and Overweight starts at 25, so [24.9, 25) and >= 29.9 fall through to
	// Obese. Records already in the store were classified this way.
	BreakpointsLegacy Breakpoints = "legacy"
	// BreakpointsStandard uses the WHO cut-offs 18.5 / 25 / 30.
	BreakpointsStandard Breakpoints = "standard"
)

// ParseBreakpoints maps a config value to Breakpoints. Empty means legacy.
func ParseBreakpoints(s string) (Breakpoints, error) {
	switch Breakpoints(strings.ToLower(strings.TrimSpace(s))) {
	case "", BreakpointsLegacy:
		return BreakpointsLegacy, nil
	case BreakpointsStandard:
		return BreakpointsStandard, nil
	}
	return "", fmt.Errorf("unknown BMI breakpoints %q (want legacy or standard)", s)
}

// Result is the output of one BMI computation.
type Result struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Tip      string  `json:"tip"`
}

// Classifier computes BMI and maps it to a category.
// The zero value uses BreakpointsLegacy.
type Classifier struct {
	Breakpoints Breakpoints
}

// Compute returns bmi = weight / height² with its category and tip.
// Pure: calling it twice with the same inputs yields the same Result.
func (c Classifier) Compute(weightKG, heightM float64) (Result, error) {
	if weightKG <= 0 || heightM <= 0 {
		return Result{}, ErrInvalidMeasurement
	}
	bmi := weightKG / (heightM * heightM)
	category := c.Classify(bmi)
	return Result{BMI: bmi, Category: category, Tip: tips[category]}, nil
}

// Classify maps a BMI value to a category label. First match wins; Obese is
// the catch-all.
func (c Classifier) Classify(bmi float64) string {
	if c.Breakpoints == BreakpointsStandard {
		switch {
		case bmi < 18.5:
			return CategoryUnderweight
		case bmi < 25:
			return CategoryNormal
		case bmi < 30:
			return CategoryOverweight
		default:
			return CategoryObese
		}
	}

	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi >= 18.5 && bmi < 24.9:
		return CategoryNormal
	case bmi >= 25 && bmi < 29.9:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
