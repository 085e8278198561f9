package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/mathutil"
	"github.com/iwvelando/pension-calculator/pkg/pension"
	"github.com/iwvelando/pension-calculator/pkg/reference"
)

var (
	// ErrNonPositiveSalary rejects salaries that would make the replacement
	// rate infinite, undefined or negative.
	ErrNonPositiveSalary = errors.New("monthly salary must be a positive number")

	// ErrNegativeContributionYears rejects negative contribution histories.
	ErrNegativeContributionYears = errors.New("contribution years must not be negative")

	// ErrNonPositiveAverageSalary rejects unusable regional average salaries.
	ErrNonPositiveAverageSalary = errors.New("average salary must be a positive number")
)

// ValidateInputs returns an error when the inputs cannot produce a
// meaningful result. All failures are joined into one error.
func ValidateInputs(in pension.Inputs) error {
	var errs []error

	if !mathutil.IsFinite(in.MonthlySalary) || in.MonthlySalary <= 0 {
		errs = append(errs, fmt.Errorf("%w, got %v", ErrNonPositiveSalary, in.MonthlySalary))
	}
	if in.ContributionYears < 0 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrNegativeContributionYears, in.ContributionYears))
	}
	if !mathutil.IsFinite(in.AverageSalary) || in.AverageSalary <= 0 {
		errs = append(errs, fmt.Errorf("%w, got %v", ErrNonPositiveAverageSalary, in.AverageSalary))
	}

	return errors.Join(errs...)
}

// InputWarnings returns advisories for values that are accepted but fall
// outside the ranges the calculator is tuned for.
func InputWarnings(in pension.Inputs, tables *reference.Tables) []string {
	var warnings []string

	if in.MonthlySalary < constants.MinAdvisorySalary || in.MonthlySalary > constants.MaxAdvisorySalary {
		warnings = append(warnings, fmt.Sprintf("Monthly salary %.2f is outside the typical range %.0f-%.0f",
			in.MonthlySalary, constants.MinAdvisorySalary, constants.MaxAdvisorySalary))
	}

	if in.ContributionYears < constants.MinAdvisoryContributionYrs || in.ContributionYears > constants.MaxAdvisoryContributionYrs {
		warnings = append(warnings, fmt.Sprintf("Contribution years %d is outside the typical range %d-%d",
			in.ContributionYears, constants.MinAdvisoryContributionYrs, constants.MaxAdvisoryContributionYrs))
	}

	if in.RetirementAge < constants.MinAdvisoryRetirementAge || in.RetirementAge > constants.MaxAdvisoryRetirementAge {
		warnings = append(warnings, fmt.Sprintf("Retirement age %d is outside the typical range %d-%d",
			in.RetirementAge, constants.MinAdvisoryRetirementAge, constants.MaxAdvisoryRetirementAge))
	}

	if tables == nil {
		tables = reference.Default()
	}
	if months, found := tables.PayoutMonths(in.RetirementAge); !found {
		warnings = append(warnings, fmt.Sprintf("Retirement age %d has no payout table entry; using the age-%d divisor of %d months",
			in.RetirementAge, constants.FallbackRetirementAge, months))
	}

	return warnings
}
