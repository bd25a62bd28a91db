package main

import (
	"lg/bmi-tracker/internal/health"
	"lg/bmi-tracker/internal/store"
)

// calculateRequest is the body of POST /api/calculate and the fields of the
// HTML form posted to /calculate.
type calculateRequest struct {
	Unit   string  `form:"unit"   json:"unit"`
	Name   string  `form:"name"   json:"name"`
	Age    int     `form:"age"    json:"age"`
	Gender string  `form:"gender" json:"gender"`
	Weight float64 `form:"weight" json:"weight"`
	Height float64 `form:"height" json:"height"`
}

// toInput parses the unit system and gender into a health.Input.
func (r calculateRequest) toInput() (health.Input, error) {
	system, err := health.ParseUnitSystem(r.Unit)
	if err != nil {
		return health.Input{}, &health.ValidationError{Field: "unit", Message: "must be metric or imperial"}
	}
	return health.Input{
		System: system,
		Name:   r.Name,
		Age:    r.Age,
		Gender: health.ParseGender(r.Gender),
		Weight: r.Weight,
		Height: r.Height,
	}, nil
}

// calculateResponse is returned by POST /api/calculate. Saved is false when
// the result could not be written to the record store.
type calculateResponse struct {
	*health.Computation
	Saved    bool  `json:"saved"`
	RecordID int64 `json:"record_id,omitempty"`
}

// indexPage is the data rendered by templates/index.html.
type indexPage struct {
	Units   []unitOption
	Genders []health.Gender
	Form    calculateRequest
	Result  *sessionResult
	Error   string // inline validation / export message
	Records []store.Record
	Chart   bool // at least two records, so /chart.svg has something to draw
}

type unitOption struct {
	Value string
	Label string
}

var unitOptions = []unitOption{
	{Value: string(health.Metric), Label: "Metric (kg/m)"},
	{Value: string(health.Imperial), Label: "Imperial (lbs/in)"},
}

// defaultForm pre-fills the form with the minimum allowed values.
func defaultForm() calculateRequest {
	return calculateRequest{
		Unit:   string(health.Metric),
		Age:    health.MinAge,
		Gender: string(health.Male),
		Weight: health.MinWeightKG,
		Height: health.MinHeightM,
	}
}
