package report

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
)

// Summary counts classification outcomes
type Summary struct {
	Total        int                   `json:"total"`
	OTPs         int                   `json:"otps"`
	Transactions int                   `json:"transactions"`
	None         int                   `json:"none"`
	Debits       int                   `json:"debits"`
	Credits      int                   `json:"credits"`
	Interest     int                   `json:"interest"`
	Rejections   map[domain.Reason]int `json:"rejections,omitempty"`

	TotalDebited  decimal.Decimal `json:"total_debited"`
	TotalCredited decimal.Decimal `json:"total_credited"`
}

// Summarize tallies results by kind, direction and rejection reason
func Summarize(results []domain.Result) Summary {
	s := Summary{
		Rejections:    make(map[domain.Reason]int),
		TotalDebited:  decimal.Zero,
		TotalCredited: decimal.Zero,
	}

	for _, r := range results {
		s.Total++
		c := r.Classification

		switch {
		case c.IsOTP():
			s.OTPs++
		case c.IsTransaction():
			s.Transactions++
			rec := c.Transaction
			if rec.IsInterest {
				s.Interest++
			}
			if rec.IsDebit() {
				s.Debits++
				s.TotalDebited = s.TotalDebited.Add(rec.Amount)
			} else {
				s.Credits++
				s.TotalCredited = s.TotalCredited.Add(rec.Amount)
			}
		default:
			s.None++
			if c.Reason != domain.ReasonNone {
				s.Rejections[c.Reason]++
			}
		}
	}

	return s
}
