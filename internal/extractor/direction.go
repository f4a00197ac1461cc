package extractor

import (
	"github.com/tirasundara/sms-alert-classifier/internal/classifier"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
)

// DirectionSignals holds the keyword evidence found in a message
type DirectionSignals struct {
	IsDebit    bool
	IsCredit   bool
	IsInterest bool

	// offsets of the earliest strong debit verb and credit keyword, -1 when absent
	strongDebitAt int
	creditAt      int
}

// ReadDirectionSignals collects debit, credit and interest evidence from lower
func ReadDirectionSignals(lower string) DirectionSignals {
	s := DirectionSignals{
		IsDebit:       keywords.Debit.Contains(lower),
		IsInterest:    keywords.Interest.Contains(lower),
		strongDebitAt: keywords.StrongDebit.Index(lower),
		creditAt:      keywords.Credit.Index(lower),
	}
	s.IsCredit = s.creditAt >= 0 || classifier.IsPaymentReceived(lower)
	if s.creditAt < 0 && s.IsCredit {
		s.creditAt = len(lower)
	}
	return s
}

// Resolve picks the final direction. Interest is always a credit; otherwise a
// credit signal wins unless a strong debit verb comes before it.
func (s DirectionSignals) Resolve() domain.Direction {
	if s.IsInterest {
		return domain.Credit
	}
	if !s.IsCredit {
		return domain.Debit
	}
	if s.strongDebitAt >= 0 && s.strongDebitAt < s.creditAt {
		return domain.Debit
	}
	return domain.Credit
}

// ResolveDirection is ReadDirectionSignals followed by Resolve
func ResolveDirection(lower string) domain.Direction {
	return ReadDirectionSignals(lower).Resolve()
}
