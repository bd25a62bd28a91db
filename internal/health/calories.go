package health

import (
	"fmt"
	"math"
	"strings"
)

// Gender values offered by the form.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// Genders is the ordered option list for the form's select box.
var Genders = []Gender{Male, Female, Other}

// ParseGender normalizes case ("male" -> Male). Unknown values are returned
// unchanged; CaloriePolicy treats them as unlisted.
func ParseGender(s string) Gender {
	v := strings.TrimSpace(s)
	for _, g := range Genders {
		if strings.EqualFold(v, string(g)) {
			return g
		}
	}
	return Gender(v)
}

// Mifflin-St Jeor sex constants.
const (
	offsetMale     = 5.0
	offsetFemale   = -161.0
	offsetMidpoint = (offsetMale + offsetFemale) / 2
)

// CaloriePolicy holds the per-gender constant added to the Mifflin-St Jeor
// base. Genders missing from Offsets (including Other) use Unlisted.
type CaloriePolicy struct {
	Offsets  map[Gender]float64
	Unlisted float64
}

// DefaultCaloriePolicy keeps the historical behavior: anything that is not
// Male gets the female constant.
func DefaultCaloriePolicy() CaloriePolicy {
	return CaloriePolicy{
		Offsets:  map[Gender]float64{Male: offsetMale, Female: offsetFemale},
		Unlisted: offsetFemale,
	}
}

// ParseCaloriePolicy builds a policy whose unlisted offset is one of
// "female" (default), "male" or "midpoint".
func ParseCaloriePolicy(unlisted string) (CaloriePolicy, error) {
	p := DefaultCaloriePolicy()
	switch strings.ToLower(strings.TrimSpace(unlisted)) {
	case "", "female":
	case "male":
		p.Unlisted = offsetMale
	case "midpoint":
		p.Unlisted = offsetMidpoint
	default:
		return CaloriePolicy{}, fmt.Errorf("unknown unlisted calorie offset %q (want female, male or midpoint)", unlisted)
	}
	return p, nil
}

// Offset returns the constant used for g.
func (p CaloriePolicy) Offset(g Gender) float64 {
	if v, ok := p.Offsets[g]; ok {
		return v
	}
	return p.Unlisted
}

// Estimate returns the recommended daily intake in kcal:
// round(10*kg + 6.25*cm - 5*age + offset), the Mifflin-St Jeor BMR.
func (p CaloriePolicy) Estimate(weightKG, heightM float64, age int, g Gender) int {
	kcal := 10*weightKG + 6.25*(heightM*100) - 5*float64(age) + p.Offset(g)
	return int(math.Round(kcal))
}
