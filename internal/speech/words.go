package speech

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Indian numbering groups, largest first
var groups = []struct {
	size     decimal.Decimal
	singular string
	plural   string
}{
	{decimal.NewFromInt(10000000), "crore", "crores"},
	{decimal.NewFromInt(100000), "lakh", "lakhs"},
	{decimal.NewFromInt(1000), "thousand", "thousands"},
}

// ToSpokenWords renders amount with crore, lakh and thousand groups followed by
// paise. Group multipliers and the remainder stay numerals ("2 lakhs 50 thousands").
// The currency word is left to the caller.
func ToSpokenWords(amount decimal.Decimal) string {
	amount = amount.Abs()
	whole := amount.Truncate(0)
	paise := amount.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise >= 100 {
		whole = whole.Add(decimal.NewFromInt(1))
		paise -= 100
	}

	if whole.IsZero() && paise == 0 {
		return "zero"
	}

	// Group arithmetic stays in decimal, amounts read from a message are unbounded
	var parts []string
	rest := whole
	for _, g := range groups {
		n, r := rest.QuoRem(g.size, 0)
		rest = r
		if n.IsZero() {
			continue
		}
		unit := g.singular
		if n.GreaterThan(decimal.NewFromInt(1)) {
			unit = g.plural
		}
		parts = append(parts, n.String()+" "+unit)
	}
	if rest.IsPositive() {
		parts = append(parts, rest.String())
	}

	if paise > 0 {
		unit := "paise"
		if paise == 1 {
			unit = "paisa"
		}
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, strconv.FormatInt(paise, 10)+" "+unit)
	}

	return strings.Join(parts, " ")
}
