package health

import (
	"fmt"
	"strings"
)

// UnitSystem is the measurement system the user typed their numbers in.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"   // kg / m
	Imperial UnitSystem = "imperial" // lbs / in
)

// Conversion factors. These must stay exact: stored records written by older
// versions were converted with the same values.
const (
	kgPerLB = 0.453592
	mPerIN  = 0.0254
)

// Measurement is a weight/height pair in canonical units (kg, m).
type Measurement struct {
	WeightKG float64 `json:"weight_kg"`
	HeightM  float64 `json:"height_m"`
}

// ParseUnitSystem accepts the short names and the form labels
// ("Metric (kg/m)", "Imperial (lbs/in)"). Matching is case-insensitive.
func ParseUnitSystem(s string) (UnitSystem, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "" || v == string(Metric) || strings.HasPrefix(v, "metric "):
		return Metric, nil
	case v == string(Imperial) || strings.HasPrefix(v, "imperial "):
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q", s)
}

// Normalize converts raw form values into canonical units. Metric passes
// through; imperial is treated as pounds and inches. Range checks are the
// caller's job (see ValidateInput).
func Normalize(system UnitSystem, weight, height float64) Measurement {
	if system == Imperial {
		return Measurement{WeightKG: LBSToKG(weight), HeightM: INToM(height)}
	}
	return Measurement{WeightKG: weight, HeightM: height}
}

func LBSToKG(lbs float64) float64 { return lbs * kgPerLB }
func KGToLBS(kg float64) float64  { return kg / kgPerLB }
func INToM(in float64) float64    { return in * mPerIN }
func MToIN(m float64) float64     { return m / mPerIN }
