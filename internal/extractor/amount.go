package extractor

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
)

// ErrNoAmount is returned when a message carries no usable currency amount
var ErrNoAmount = errors.New("no currency amount in message")

func IsNoAmount(err error) bool {
	return errors.Is(err, ErrNoAmount)
}

// ParseAmount returns the first currency prefixed amount in body, rounded to 2 places.
// Zero amounts are treated as missing.
func ParseAmount(body string) (decimal.Decimal, error) {
	match := keywords.AmountPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return decimal.Zero, ErrNoAmount
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return decimal.Zero, ErrNoAmount
	}

	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, ErrNoAmount
	}

	return amount, nil
}

// DisplayAmount renders amount without a trailing ".00", keeping two decimals otherwise
func DisplayAmount(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return amount.Truncate(0).String()
	}
	return amount.StringFixed(2)
}
