package money

import "github.com/shopspring/decimal"

// Totals are accumulated as plain float64 and only rounded here, at
// display time.

// Format rounds to two decimals: 27.5 -> "27.50".
func Format(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}

// FormatBRL renders the currency string shown on the dashboard.
func FormatBRL(value float64) string {
	return "R$ " + Format(value)
}
