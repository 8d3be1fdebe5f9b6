package helpers

import "github.com/shopspring/decimal"

// Money renders an amount with exactly two decimal places. All money
// leaving the API goes through this, never through float formatting.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
