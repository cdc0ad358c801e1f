package report

import "github.com/shopspring/decimal"

// Money formats v with two decimals, rounding half away from zero.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Dollars formats v as a dollar amount with thousands separators.
func Dollars(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, cents := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	var grouped []byte
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}

	return sign + "$" + string(grouped) + cents
}
