package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyLabel is appended to formatted amounts.
var CurrencyLabel = "XOF"

// FormatXOF rounds amount to the unit and groups thousands with spaces,
// e.g. 1234567.6 -> "1 234 568 XOF".
func FormatXOF(amount decimal.Decimal) string {
	return FormatGrouped(amount.Round(0)) + " " + CurrencyLabel
}

// FormatVolume renders a litre count with grouped thousands, e.g. "10 000 L".
func FormatVolume(litres int64) string {
	return FormatGrouped(decimal.NewFromInt(litres)) + " L"
}

// FormatGrouped renders the integer part of n with a space every three digits.
func FormatGrouped(n decimal.Decimal) string {
	digits := n.Truncate(0).Abs().String()
	var b strings.Builder
	if n.Truncate(0).IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(' ')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
