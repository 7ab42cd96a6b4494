package response

import "github.com/shopspring/decimal"

// roundMoney renders an amount to cents. Totals stay exact everywhere else.
func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
