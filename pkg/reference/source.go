package reference

import (
	"fmt"
	"math"

	"github.com/iwvelando/pension-calculator/pkg/constants"
)

// AverageSalarySource selects the regional average salary fed to the basic
// pension formula. It is either a CitySource or a CustomSource.
type AverageSalarySource interface {
	// Resolve returns the average salary and the city label to report.
	Resolve(t *Tables) (float64, string, error)
	isAverageSalarySource()
}

// CitySource looks the average salary up in the city table.
type CitySource struct {
	Name string
}

// CustomSource carries an average salary supplied by the user.
type CustomSource struct {
	Value float64
}

// Resolve implements AverageSalarySource.
func (s CitySource) Resolve(t *Tables) (float64, string, error) {
	salary, err := t.AverageSalary(s.Name)
	if err != nil {
		return 0, "", err
	}
	return salary, s.Name, nil
}

// Resolve implements AverageSalarySource.
func (s CustomSource) Resolve(_ *Tables) (float64, string, error) {
	if s.Value <= 0 || math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
		return 0, "", fmt.Errorf("custom average salary must be a positive number, got %v", s.Value)
	}
	return s.Value, constants.CustomCity, nil
}

func (CitySource) isAverageSalarySource()   {}
func (CustomSource) isAverageSalarySource() {}

// SourceFor maps a city label and an average salary onto a source: the
// custom sentinel, or an empty city with a salary, selects CustomSource.
func SourceFor(city string, averageSalary float64) AverageSalarySource {
	if city == constants.CustomCity || (city == "" && averageSalary > 0) {
		return CustomSource{Value: averageSalary}
	}
	if city == "" {
		city = constants.DefaultCity
	}
	return CitySource{Name: city}
}
