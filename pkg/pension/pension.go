// Package pension computes projected monthly pensions from salary,
// contribution history and retirement age.
//
// All arithmetic is float64 and nothing is rounded here; rounding is a
// presentation concern.
package pension

import (
	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/reference"
)

// Inputs is a snapshot of the values a user submits.
type Inputs struct {
	MonthlySalary     float64 `json:"monthlySalary" yaml:"monthlySalary"`
	ContributionYears int     `json:"contributionYears" yaml:"contributionYears"`
	RetirementAge     int     `json:"retirementAge" yaml:"retirementAge"`
	AverageSalary     float64 `json:"averageSalary" yaml:"averageSalary"`
	City              string  `json:"city" yaml:"city"`
}

// BelowMinimumContribution reports whether the contribution history is too
// short to draw a pension.
func (in Inputs) BelowMinimumContribution() bool {
	return in.ContributionYears < constants.MinimumContributionYears
}

// Result is the derived pension breakdown.
type Result struct {
	BasicPension      float64 `json:"basicPension" yaml:"basicPension"`
	PersonalPension   float64 `json:"personalPension" yaml:"personalPension"`
	TotalPension      float64 `json:"totalPension" yaml:"totalPension"`
	ReplacementRate   float64 `json:"replacementRate" yaml:"replacementRate"`
	PayoutMonths      int     `json:"payoutMonths" yaml:"payoutMonths"`
	ContributionRatio float64 `json:"contributionRatio" yaml:"contributionRatio"`
}

// Calculator evaluates the pension formulas against a set of reference tables.
type Calculator struct {
	tables *reference.Tables
}

// NewCalculator returns a Calculator bound to tables. A nil tables argument
// selects the built-in reference tables.
func NewCalculator(tables *reference.Tables) *Calculator {
	if tables == nil {
		tables = reference.Default()
	}
	return &Calculator{tables: tables}
}

// Tables returns the reference tables the calculator uses.
func (c *Calculator) Tables() *reference.Tables {
	return c.tables
}

// BasicPension computes the social-pooling component:
// averageSalary × (1 + contributionRatio) / 2 × contributionYears × 1%.
// Inputs are not validated.
func BasicPension(averageSalary float64, contributionYears int, contributionRatio float64) float64 {
	return averageSalary * (1 + contributionRatio) / 2 * float64(contributionYears) * constants.BasicPensionAccrual
}

// PersonalAccountBalance is the amount accumulated in the personal account
// after contributionYears of contributions.
func PersonalAccountBalance(monthlySalary float64, contributionYears int) float64 {
	return monthlySalary * constants.PersonalContributionRate * constants.MonthsPerYear * float64(contributionYears)
}

// PersonalPension computes the personal-account component with the built-in
// payout table.
func PersonalPension(monthlySalary float64, contributionYears, retirementAge int) float64 {
	return defaultCalculator.PersonalPension(monthlySalary, contributionYears, retirementAge)
}

// Summary computes the full breakdown with the built-in payout table.
func Summary(monthlySalary, averageSalary float64, contributionYears, retirementAge int) Result {
	return defaultCalculator.Summary(monthlySalary, averageSalary, contributionYears, retirementAge)
}

var defaultCalculator = NewCalculator(nil)

// PayoutMonths returns the payout divisor for retirementAge, falling back to
// the age-60 divisor when the age has no table entry.
func (c *Calculator) PayoutMonths(retirementAge int) int {
	months, _ := c.tables.PayoutMonths(retirementAge)
	return months
}

// PersonalPension divides the personal account balance by the payout months
// for retirementAge.
func (c *Calculator) PersonalPension(monthlySalary float64, contributionYears, retirementAge int) float64 {
	return PersonalAccountBalance(monthlySalary, contributionYears) / float64(c.PayoutMonths(retirementAge))
}

// Summary composes the basic and personal components using the policy
// contribution ratio. ReplacementRate follows float semantics, so a zero
// salary yields +Inf or NaN; callers validate salary first.
func (c *Calculator) Summary(monthlySalary, averageSalary float64, contributionYears, retirementAge int) Result {
	basic := BasicPension(averageSalary, contributionYears, constants.ContributionRatio)
	personal := c.PersonalPension(monthlySalary, contributionYears, retirementAge)
	total := basic + personal

	return Result{
		BasicPension:      basic,
		PersonalPension:   personal,
		TotalPension:      total,
		ReplacementRate:   total / monthlySalary * constants.PercentageMultiplier,
		PayoutMonths:      c.PayoutMonths(retirementAge),
		ContributionRatio: constants.ContributionRatio,
	}
}

// Calculate runs Summary on a submitted Inputs snapshot.
func (c *Calculator) Calculate(in Inputs) Result {
	return c.Summary(in.MonthlySalary, in.AverageSalary, in.ContributionYears, in.RetirementAge)
}
