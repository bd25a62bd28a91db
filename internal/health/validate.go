package health

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the sentinel every *ValidationError matches via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError names the offending field and carries a message that is
// safe to show the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Form bounds. Imperial bounds apply to the raw lbs/in values.
const (
	MinAge       = 10
	MaxAge       = 120
	MinWeightKG  = 1.0
	MinHeightM   = 0.5
	MaxHeightM   = 3.0
	MinWeightLBS = 1.0
	MinHeightIN  = 10.0
	MaxHeightIN  = 120.0
	MaxWeight    = 9999.9 // in the entered unit
)

// Input is the raw form submission before normalization.
type Input struct {
	System UnitSystem
	Name   string
	Age    int
	Gender Gender
	Weight float64
	Height float64
}

// ValidateInput range-checks raw values in the units they were entered in.
// It returns the first failing field.
func ValidateInput(in Input) error {
	if in.Age < MinAge || in.Age > MaxAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)}
	}

	minW, minH, maxH, wUnit, hUnit := MinWeightKG, MinHeightM, MaxHeightM, "kg", "m"
	if in.System == Imperial {
		minW, minH, maxH, wUnit, hUnit = MinWeightLBS, MinHeightIN, MaxHeightIN, "lbs", "in"
	}
	if !inRange(in.Weight, minW, MaxWeight) {
		return &ValidationError{Field: "weight", Message: fmt.Sprintf("must be between %.1f and %.1f %s", minW, MaxWeight, wUnit)}
	}
	if !inRange(in.Height, minH, maxH) {
		return &ValidationError{Field: "height", Message: fmt.Sprintf("must be between %.1f and %.1f %s", minH, maxH, hUnit)}
	}
	return nil
}

// inRange reports whether v is a finite number within [lo, hi].
func inRange(v, lo, hi float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= lo && v <= hi
}
