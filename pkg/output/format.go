// Package output provides utilities for formatting and displaying pension results.
package output

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/pension-calculator/internal/session"
	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/format"
	"github.com/iwvelando/pension-calculator/pkg/mathutil"
)

// Formula notes shown under every result.
var formulaNotes = []string{
	"Basic pension = local average salary × (1 + average contribution tier) ÷ 2 × contribution years × 1%",
	"Personal account pension = personal account balance ÷ payout months",
	"This result is for reference only; the actual pension is determined by the local social security authority",
}

// Breakdown is the render-ready form of a session view.
type Breakdown struct {
	CalculationID     string   `json:"calculationId" yaml:"calculationId"`
	City              string   `json:"city" yaml:"city"`
	AverageSalary     float64  `json:"averageSalary" yaml:"averageSalary"`
	MonthlySalary     float64  `json:"monthlySalary" yaml:"monthlySalary"`
	ContributionYears int      `json:"contributionYears" yaml:"contributionYears"`
	RetirementAge     int      `json:"retirementAge" yaml:"retirementAge"`
	PayoutMonths      int      `json:"payoutMonths" yaml:"payoutMonths"`
	BasicPension      float64  `json:"basicPension" yaml:"basicPension"`
	PersonalPension   float64  `json:"personalPension" yaml:"personalPension"`
	TotalPension      float64  `json:"totalPension" yaml:"totalPension"`
	ReplacementRate   float64  `json:"replacementRate" yaml:"replacementRate"`
	BasicShare        float64  `json:"basicShare" yaml:"basicShare"`
	PersonalShare     float64  `json:"personalShare" yaml:"personalShare"`
	BelowMinimum      bool     `json:"belowMinimumContribution" yaml:"belowMinimumContribution"`
	Advisories        []string `json:"advisories,omitempty" yaml:"advisories,omitempty"`
	Notes             []string `json:"notes" yaml:"notes"`
}

// NewBreakdown derives the display values for view. Shares of the total are
// 0 when the total is 0. Advisory notices are carried along.
func NewBreakdown(view session.View, notices []session.Notice) Breakdown {
	r := view.Result
	b := Breakdown{
		CalculationID:     view.CalculationID,
		City:              view.Inputs.City,
		AverageSalary:     view.Inputs.AverageSalary,
		MonthlySalary:     view.MonthlySalary,
		ContributionYears: view.Inputs.ContributionYears,
		RetirementAge:     view.Inputs.RetirementAge,
		PayoutMonths:      r.PayoutMonths,
		BasicPension:      r.BasicPension,
		PersonalPension:   r.PersonalPension,
		TotalPension:      r.TotalPension,
		ReplacementRate:   r.ReplacementRate,
		BasicShare:        mathutil.CalculatePercentage(r.BasicPension, r.TotalPension),
		PersonalShare:     mathutil.CalculatePercentage(r.PersonalPension, r.TotalPension),
		BelowMinimum:      view.BelowMinimum,
		Notes:             append([]string(nil), formulaNotes...),
	}
	for _, n := range notices {
		// BelowMinimum already carries this one.
		if n.Level == session.LevelAdvisory && n.Code != session.CodeBelowMinimumContribution {
			b.Advisories = append(b.Advisories, n.Message)
		}
	}
	return b
}

// Render writes view in the requested output format.
func Render(w io.Writer, outputFormat string, view session.View, notices []session.Notice) error {
	b := NewBreakdown(view, notices)
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, b)
	case constants.OutputFormatCSV:
		return CsvFormat(w, b)
	case constants.OutputFormatJSON:
		return writeJSON(w, b)
	case constants.OutputFormatYAML:
		return writeYAML(w, b)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable result card.
func PrettyFormat(w io.Writer, b Breakdown) error {
	p := message.NewPrinter(language.English)
	pw := &errWriter{w: w}

	pw.printf(p, "--- Projected pension (%s) ---\n", b.CalculationID)
	pw.printf(p, "Monthly pension      | %s\n", format.Currency(b.TotalPension))
	pw.printf(p, "Replacement rate     | %s of current salary %s\n", format.Percent(b.ReplacementRate), format.Currency(b.MonthlySalary))
	pw.printf(p, "____                 | ____\n")
	pw.printf(p, "Basic pension        | %s (%s of total)\n", format.Currency(b.BasicPension), format.Percent(b.BasicShare))
	pw.printf(p, "Personal pension     | %s (%s of total)\n", format.Currency(b.PersonalPension), format.Percent(b.PersonalShare))
	pw.printf(p, "____                 | ____\n")
	pw.printf(p, "Average salary       | %s (%s)\n", format.Currency(b.AverageSalary), b.City)
	pw.printf(p, "Contribution years   | %d\n", b.ContributionYears)
	pw.printf(p, "Retirement age       | %d (payout months %d)\n", b.RetirementAge, b.PayoutMonths)

	if b.BelowMinimum {
		pw.printf(p, "\nNote: fewer than %d contribution years; result is indicative only.\n", constants.MinimumContributionYears)
	}
	for _, advisory := range b.Advisories {
		pw.printf(p, "Advisory: %s\n", advisory)
	}

	pw.printf(p, "\nHow this is calculated:\n")
	for _, note := range b.Notes {
		pw.printf(p, "  - %s\n", note)
	}
	return pw.err
}

// CsvFormat outputs in comma-separated value format, one row per field.
func CsvFormat(w io.Writer, b Breakdown) error {
	rows := [][]string{
		{"field", "value"},
		{"calculation_id", b.CalculationID},
		{"city", b.City},
		{"average_salary", formatFloat(b.AverageSalary)},
		{"monthly_salary", formatFloat(b.MonthlySalary)},
		{"contribution_years", strconv.Itoa(b.ContributionYears)},
		{"retirement_age", strconv.Itoa(b.RetirementAge)},
		{"payout_months", strconv.Itoa(b.PayoutMonths)},
		{"basic_pension", formatFloat(b.BasicPension)},
		{"personal_pension", formatFloat(b.PersonalPension)},
		{"total_pension", formatFloat(b.TotalPension)},
		{"replacement_rate", formatFloat(b.ReplacementRate)},
		{"basic_share", formatFloat(b.BasicShare)},
		{"personal_share", formatFloat(b.PersonalShare)},
		{"below_minimum_contribution", strconv.FormatBool(b.BelowMinimum)},
	}
	return writeCSV(w, rows)
}

// formatFloat renders amounts with two decimals and no separators.
func formatFloat(v float64) string {
	return strconv.FormatFloat(mathutil.Round(v), 'f', constants.CurrencyDecimalPlaces, 64)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(p *message.Printer, key string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = p.Fprintf(ew.w, key, args...)
}
