package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// Percent retorna part/total*100 com duas casas, ou zero quando total é zero
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return RoundWithTwoDecimalPlace(part.Div(total).Mul(hundred))
}

// ApplyPercent retorna percent% de value
func ApplyPercent(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred)
}
