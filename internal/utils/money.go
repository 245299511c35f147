package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatReal renders an amount as "R$ 1.234,56" (Brazilian convention).
func FormatReal(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, out.String(), frac)
}

// RoundUpCents rounds a value up to the nearest cent. Installments use this
// so the displayed per-installment sum is never below the plan total; the
// last-cent difference is absorbed downstream in bookkeeping.
func RoundUpCents(v float64) float64 {
	return math.Ceil(v*100) / 100
}
