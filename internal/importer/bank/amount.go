package bank

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseEuropeanAmount reads "1.234,56", "-588,74" or "10,00". A trailing
// currency code such as "EUR" is ignored.
func parseEuropeanAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if i := strings.IndexByte(clean, ' '); i > 0 {
		clean = clean[:i]
	}

	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	return decimal.NewFromString(clean)
}
