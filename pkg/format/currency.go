package format

import (
	"math"
	"strings"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// Currency returns a currency string with the default symbol and thousands
// separators (e.g., "-£1,234.56").
func Currency(amount float64) string {
	return CurrencyWithSymbol(constants.DefaultCurrencySymbol, amount)
}

// CurrencyWithSymbol is Currency with an explicit symbol; the sign precedes it.
func CurrencyWithSymbol(symbol string, amount float64) string {
	rounded := mathutil.RoundCurrency(amount)
	formatted := formatPositiveCurrency(math.Abs(rounded))
	if rounded < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	return CurrencyWithSymbol("", amount)
}

func formatPositiveCurrency(value float64) string {
	formatted := mathutil.FixedCurrency(value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
