package utils

import "github.com/shopspring/decimal"

// minorUnitsPerMajor converts smallest-currency-unit amounts to display units.
var minorUnitsPerMajor = decimal.NewFromInt(100)

// FormatAmount renders a smallest-unit amount as a fixed two-decimal display
// string, e.g. 12345 -> "123.45".
func FormatAmount(amount int64) string {
	return decimal.NewFromInt(amount).Div(minorUnitsPerMajor).StringFixed(2)
}
