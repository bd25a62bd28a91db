package health

import (
	"math"
	"testing"
)

func TestNormalize_MetricPassthrough(t *testing.T) {
	m := Normalize(Metric, 72.5, 1.81)
	if m.WeightKG != 72.5 || m.HeightM != 1.81 {
		t.Errorf("Normalize(metric) = %+v, want unchanged", m)
	}
}

func TestNormalize_ImperialFactors(t *testing.T) {
	m := Normalize(Imperial, 1, 1)
	if m.WeightKG != 0.453592 {
		t.Errorf("1 lb = %v kg, want 0.453592", m.WeightKG)
	}
	if m.HeightM != 0.0254 {
		t.Errorf("1 in = %v m, want 0.0254", m.HeightM)
	}
}

// TestConversionRoundTrip converts imperial -> metric -> imperial and expects
// the starting value within 1e-6 relative error.
func TestConversionRoundTrip(t *testing.T) {
	for _, v := range []float64{1, 10, 70, 150.25, 399.9, 9999.9} {
		if back := KGToLBS(LBSToKG(v)); math.Abs(back-v)/v > 1e-6 {
			t.Errorf("lbs round trip %v -> %v", v, back)
		}
		if back := MToIN(INToM(v)); math.Abs(back-v)/v > 1e-6 {
			t.Errorf("in round trip %v -> %v", v, back)
		}
	}
}

func TestParseUnitSystem(t *testing.T) {
	cases := []struct {
		in   string
		want UnitSystem
	}{
		{"", Metric},
		{"metric", Metric},
		{"Metric (kg/m)", Metric},
		{"IMPERIAL", Imperial},
		{"Imperial (lbs/in)", Imperial},
	}
	for _, tc := range cases {
		got, err := ParseUnitSystem(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseUnitSystem(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseUnitSystem("stones"); err == nil {
		t.Error("expected error for unknown unit system")
	}
}
