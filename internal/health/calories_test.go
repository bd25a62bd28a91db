package health

import "testing"

// TestEstimate_MaleScenario: 90kg, 1.70m, 30y, male
// = round(900 + 1062.5 - 150 + 5) = round(1817.5) = 1818.
func TestEstimate_MaleScenario(t *testing.T) {
	got := DefaultCaloriePolicy().Estimate(90, 1.70, 30, Male)
	if got != 1818 {
		t.Errorf("Estimate = %d, want 1818", got)
	}
}

// TestEstimate_FemaleOffset uses the same inputs with the -161 constant:
// 900 + 1062.5 - 150 - 161 = 1651.5 -> 1652.
func TestEstimate_FemaleOffset(t *testing.T) {
	got := DefaultCaloriePolicy().Estimate(90, 1.70, 30, Female)
	if got != 1652 {
		t.Errorf("Estimate = %d, want 1652", got)
	}
}

// TestEstimate_UnlistedGenders verifies the default policy treats Other and
// unknown values exactly like Female.
func TestEstimate_UnlistedGenders(t *testing.T) {
	p := DefaultCaloriePolicy()
	female := p.Estimate(62, 1.65, 41, Female)
	for _, g := range []Gender{Other, Gender("nonbinary"), Gender("")} {
		if got := p.Estimate(62, 1.65, 41, g); got != female {
			t.Errorf("Estimate(gender=%q) = %d, want female value %d", g, got, female)
		}
	}
}

func TestParseCaloriePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", -161},
		{"female", -161},
		{"MALE", 5},
		{"midpoint", -78},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParseCaloriePolicy(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.Offset(Other); got != tc.want {
				t.Errorf("Offset(Other) = %v, want %v", got, tc.want)
			}
			// Listed genders never change.
			if p.Offset(Male) != 5 || p.Offset(Female) != -161 {
				t.Errorf("listed offsets changed: male=%v female=%v", p.Offset(Male), p.Offset(Female))
			}
		})
	}

	if _, err := ParseCaloriePolicy("average"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestParseGender(t *testing.T) {
	cases := map[string]Gender{
		"male":    Male,
		" Female": Female,
		"OTHER":   Other,
		"x":       Gender("x"),
	}
	for in, want := range cases {
		if got := ParseGender(in); got != want {
			t.Errorf("ParseGender(%q) = %q, want %q", in, got, want)
		}
	}
}
