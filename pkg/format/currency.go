// Package format renders amounts and percentages for display.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/mathutil"
)

// Currency returns a currency string with the currency symbol and thousands
// separators (e.g., "-¥1,234.56").
func Currency(amount float64) string {
	formatted := NumericCurrency(amount)
	if strings.HasPrefix(formatted, "-") {
		return "-" + constants.CurrencySymbol + formatted[1:]
	}
	return constants.CurrencySymbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with
// separators (e.g., "-1,234.56"). Non-finite amounts render as "n/a".
func NumericCurrency(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return "n/a"
	}

	// Rounded half away from zero on the shortest decimal form, so 0.125 is 0.13.
	fixed := decimal.NewFromFloat(amount).Round(constants.CurrencyDecimalPlaces).StringFixed(constants.CurrencyDecimalPlaces)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		fixed = fixed[1:]
		if strings.Trim(fixed, "0.") != "" {
			sign = "-"
		}
	}

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	return sign + groupThousands(intPart) + "." + decPart
}

// Percent renders a percentage rounded to a whole number (e.g., "22%").
func Percent(pct float64) string {
	if !mathutil.IsFinite(pct) {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", mathutil.RoundPercent(pct))
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
