// Package form holds the values a user is editing before submission.
//
// Numeric fields are parsed leniently: text that does not parse as a number
// is ignored and the previous value is kept.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/pension"
	"github.com/iwvelando/pension-calculator/pkg/reference"
)

// Field names accepted by Set.
const (
	FieldMonthlySalary     = "monthlySalary"
	FieldContributionYears = "contributionYears"
	FieldRetirementAge     = "retirementAge"
	FieldAverageSalary     = "averageSalary"
)

// Bound describes the slider range of a numeric field.
type Bound struct {
	Field string
	Min   float64
	Max   float64
	Step  float64
}

// Bounds lists the slider ranges shown next to each numeric field.
var Bounds = []Bound{
	{Field: FieldMonthlySalary, Min: constants.MinAdvisorySalary, Max: constants.MaxAdvisorySalary, Step: constants.SalaryStep},
	{Field: FieldContributionYears, Min: constants.MinAdvisoryContributionYrs, Max: constants.MaxAdvisoryContributionYrs, Step: 1},
	{Field: FieldRetirementAge, Min: constants.MinAdvisoryRetirementAge, Max: constants.MaxAdvisoryRetirementAge, Step: 1},
}

// Form is the editable input state.
type Form struct {
	tables *reference.Tables

	MonthlySalary     float64
	ContributionYears int
	RetirementAge     int
	source            reference.AverageSalarySource
	customValue       float64
}

// New returns a form populated with the default values.
func New(tables *reference.Tables) *Form {
	if tables == nil {
		tables = reference.Default()
	}
	defaultAverage, _ := tables.AverageSalary(constants.DefaultCity)
	return &Form{
		tables:            tables,
		MonthlySalary:     constants.DefaultMonthlySalary,
		ContributionYears: constants.DefaultContributionYears,
		RetirementAge:     constants.DefaultRetirementAge,
		source:            reference.CitySource{Name: constants.DefaultCity},
		customValue:       defaultAverage,
	}
}

// FromInputs returns a form pre-filled with previously submitted inputs.
func FromInputs(tables *reference.Tables, in pension.Inputs) *Form {
	f := New(tables)
	f.MonthlySalary = in.MonthlySalary
	f.ContributionYears = in.ContributionYears
	f.RetirementAge = in.RetirementAge
	f.source = reference.SourceFor(in.City, in.AverageSalary)
	if in.AverageSalary > 0 {
		f.customValue = in.AverageSalary
	}
	return f
}

// Set assigns a numeric field from text. It reports whether the value was
// applied; unparsable text, or a fraction for a year or age field, leaves
// the field unchanged. An unknown field name
// is an error.
func (f *Form) Set(field, text string) (bool, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		if !isField(field) {
			return false, fmt.Errorf("unknown field %q", field)
		}
		return false, nil
	}

	switch field {
	case FieldMonthlySalary:
		f.MonthlySalary = value
	case FieldContributionYears:
		n, ok := wholeNumber(value)
		if !ok {
			return false, nil
		}
		f.ContributionYears = n
	case FieldRetirementAge:
		n, ok := wholeNumber(value)
		if !ok {
			return false, nil
		}
		f.RetirementAge = n
	case FieldAverageSalary:
		f.UseCustom(value)
	default:
		return false, fmt.Errorf("unknown field %q", field)
	}
	return true, nil
}

// SelectCity switches to city mode with the named city. The city's average
// salary becomes the starting custom value.
func (f *Form) SelectCity(name string) error {
	average, err := f.tables.AverageSalary(name)
	if err != nil {
		return err
	}
	f.source = reference.CitySource{Name: name}
	f.customValue = average
	return nil
}

// UseCustom switches to a user-supplied average salary.
func (f *Form) UseCustom(value float64) {
	f.customValue = value
	f.source = reference.CustomSource{Value: value}
}

// ToggleCustom flips between city and custom mode. Switching to custom mode
// keeps the current average salary; returning to city mode selects the
// default city.
func (f *Form) ToggleCustom() {
	if f.Custom() {
		f.source = reference.CitySource{Name: constants.DefaultCity}
		return
	}
	if average, _, err := f.source.Resolve(f.tables); err == nil {
		f.customValue = average
	}
	f.source = reference.CustomSource{Value: f.customValue}
}

// Custom reports whether the form is in custom average-salary mode.
func (f *Form) Custom() bool {
	_, ok := f.source.(reference.CustomSource)
	return ok
}

// Source returns the current average-salary source.
func (f *Form) Source() reference.AverageSalarySource {
	return f.source
}

// Inputs resolves the form into a submission snapshot.
func (f *Form) Inputs() (pension.Inputs, error) {
	average, city, err := f.source.Resolve(f.tables)
	if err != nil {
		return pension.Inputs{}, err
	}
	return pension.Inputs{
		MonthlySalary:     f.MonthlySalary,
		ContributionYears: f.ContributionYears,
		RetirementAge:     f.RetirementAge,
		AverageSalary:     average,
		City:              city,
	}, nil
}

func isField(field string) bool {
	switch field {
	case FieldMonthlySalary, FieldContributionYears, FieldRetirementAge, FieldAverageSalary:
		return true
	}
	return false
}

// wholeNumber converts value to an int when it is integral and within the
// int32 range; anything else counts as malformed.
func wholeNumber(value float64) (int, bool) {
	if value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
		return 0, false
	}
	return int(value), true
}
