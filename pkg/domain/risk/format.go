package risk

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders a monetary amount in the es-ES style used across
// exports and terminal output: dot-grouped integer euros, e.g. "45.000 €".
func FormatCurrency(amount float64) string {
	return groupThousands(strconv.FormatFloat(math.Round(amount), 'f', 0, 64)) + " €"
}

// FormatNumber renders a number with es-ES separators (dot for thousands,
// comma for decimals), keeping at most three decimal places.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, frac := parts[0], parts[1]
	frac = strings.TrimRight(frac, "0")

	out := groupThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	return out
}

// FormatPercentage renders a percentage with one decimal, e.g. "70.0%".
func FormatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func groupThousands(intPart string) string {
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
