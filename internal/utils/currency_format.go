package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatInvariant formats an amount with exactly 2 fraction digits, a
// period as the decimal separator and commas as thousands separators,
// regardless of the host locale. Wire output must be stable, so this never
// consults the process locale.
// Example: 1234567.5 returns "1,234,567.50"; -0.004 returns "-0.00".
func FormatInvariant(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(intPart) + "." + fracPart
}

// groupThousands inserts a comma every three digits, right to left.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
