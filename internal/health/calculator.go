package health

// Computation is everything produced by one Calculate action: the identity
// fields the user typed, the canonical measurement, the BMI result and the
// calorie estimate. It is held per session and is what the report renders.
type Computation struct {
	Name     string     `json:"name"`
	Age      int        `json:"age"`
	Gender   Gender     `json:"gender"`
	System   UnitSystem `json:"system"`
	WeightKG float64    `json:"weight_kg"`
	HeightM  float64    `json:"height_m"`
	Result
	// Calories is nil when no estimate could be made; the report prints N/A.
	Calories *int `json:"calories"`
}

// Calculator wires the BMI classifier and calorie policy together.
type Calculator struct {
	Classifier Classifier
	Calories   CaloriePolicy
}

// NewCalculator returns a Calculator with legacy breakpoints and the default
// calorie policy.
func NewCalculator() Calculator {
	return Calculator{Classifier: Classifier{Breakpoints: BreakpointsLegacy}, Calories: DefaultCaloriePolicy()}
}

// Calculate validates the raw input, converts it to kg/m and runs both
// estimators. Validation failures return an error matching ErrInvalidInput
// and no Computation.
func (c Calculator) Calculate(in Input) (*Computation, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	m := Normalize(in.System, in.Weight, in.Height)

	res, err := c.Classifier.Compute(m.WeightKG, m.HeightM)
	if err != nil {
		return nil, err
	}
	kcal := c.Calories.Estimate(m.WeightKG, m.HeightM, in.Age, in.Gender)

	return &Computation{
		Name:     in.Name,
		Age:      in.Age,
		Gender:   in.Gender,
		System:   in.System,
		WeightKG: m.WeightKG,
		HeightM:  m.HeightM,
		Result:   res,
		Calories: &kcal,
	}, nil
}
