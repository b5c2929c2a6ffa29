package money

import (
	"fmt"
	"strings"
)

// Amount is a signed amount in cents.
type Amount int

// String renders the amount with two decimals and a comma separator,
// e.g. -1560 -> "-15,60".
func (a Amount) String() string {
	sign := ""
	v := int(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d,%02d", sign, v/100, v%100)
}

// Signed is like String but always carries a sign, as on a scoreboard.
func (a Amount) Signed() string {
	if a > 0 {
		return "+" + a.String()
	}
	return a.String()
}

// Format renders cents followed by the currency symbol.
func Format(cents int, symbol string) string {
	return withSymbol(Amount(cents).String(), symbol)
}

// FormatSigned is Format with a leading sign on positive amounts.
func FormatSigned(cents int, symbol string) string {
	return withSymbol(Amount(cents).Signed(), symbol)
}

func withSymbol(s, symbol string) string {
	if symbol = strings.TrimSpace(symbol); symbol == "" {
		return s
	}
	return s + " " + symbol
}
