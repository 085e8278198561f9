package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/format"
	"github.com/iwvelando/pension-calculator/pkg/reference"
)

// CityRow is one entry of the average-salary table.
type CityRow struct {
	City          string  `json:"city" yaml:"city"`
	AverageSalary float64 `json:"averageSalary" yaml:"averageSalary"`
}

// PayoutRow is one entry of the payout-months table.
type PayoutRow struct {
	RetirementAge int `json:"retirementAge" yaml:"retirementAge"`
	PayoutMonths  int `json:"payoutMonths" yaml:"payoutMonths"`
}

// CityRows lists the city table in lexical order.
func CityRows(tables *reference.Tables) []CityRow {
	names := tables.Cities()
	rows := make([]CityRow, 0, len(names))
	for _, name := range names {
		salary, _ := tables.AverageSalary(name)
		rows = append(rows, CityRow{City: name, AverageSalary: salary})
	}
	return rows
}

// PayoutRows lists the payout table by ascending age.
func PayoutRows(tables *reference.Tables) []PayoutRow {
	ages := tables.Ages()
	rows := make([]PayoutRow, 0, len(ages))
	for _, age := range ages {
		months, _ := tables.PayoutMonths(age)
		rows = append(rows, PayoutRow{RetirementAge: age, PayoutMonths: months})
	}
	return rows
}

// RenderCities writes the city table in the requested format.
func RenderCities(w io.Writer, outputFormat string, tables *reference.Tables) error {
	rows := CityRows(tables)
	switch outputFormat {
	case constants.OutputFormatPretty:
		p := message.NewPrinter(language.English)
		pw := &errWriter{w: w}
		pw.printf(p, "City                 | Average salary\n")
		pw.printf(p, "____                 | ______________\n")
		for _, row := range rows {
			pw.printf(p, "%-20s | %s\n", row.City, format.Currency(row.AverageSalary))
		}
		return pw.err
	case constants.OutputFormatCSV:
		records := [][]string{{"city", "average_salary"}}
		for _, row := range rows {
			records = append(records, []string{row.City, formatFloat(row.AverageSalary)})
		}
		return writeCSV(w, records)
	case constants.OutputFormatJSON:
		return writeJSON(w, rows)
	case constants.OutputFormatYAML:
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// RenderPayoutMonths writes the payout-months table in the requested format.
func RenderPayoutMonths(w io.Writer, outputFormat string, tables *reference.Tables) error {
	rows := PayoutRows(tables)
	switch outputFormat {
	case constants.OutputFormatPretty:
		p := message.NewPrinter(language.English)
		pw := &errWriter{w: w}
		pw.printf(p, "Retirement age | Payout months\n")
		pw.printf(p, "______________ | _____________\n")
		for _, row := range rows {
			pw.printf(p, "%-14d | %d\n", row.RetirementAge, row.PayoutMonths)
		}
		pw.printf(p, "Ages outside the table use the age-%d divisor.\n", constants.FallbackRetirementAge)
		return pw.err
	case constants.OutputFormatCSV:
		records := [][]string{{"retirement_age", "payout_months"}}
		for _, row := range rows {
			records = append(records, []string{strconv.Itoa(row.RetirementAge), strconv.Itoa(row.PayoutMonths)})
		}
		return writeCSV(w, records)
	case constants.OutputFormatJSON:
		return writeJSON(w, rows)
	case constants.OutputFormatYAML:
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

func writeCSV(w io.Writer, records [][]string) error {
	if err := csv.NewWriter(w).WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
