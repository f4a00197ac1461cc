package classifier

import (
	"strings"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
)

// Decision is the outcome of transaction classification
type Decision struct {
	Accepted bool
	Reason   domain.Reason
}

func accept() Decision {
	return Decision{Accepted: true}
}

func reject(reason domain.Reason) Decision {
	return Decision{Reason: reason}
}

// IsTransaction reports whether body describes a completed financial transaction
func IsTransaction(body, senderAddress string) bool {
	return Classify(body, senderAddress).Accepted
}

// Classify decides whether body describes a completed financial transaction.
// Rules are evaluated in order and the first rejection wins.
func Classify(body, senderAddress string) Decision {
	lower := strings.ToLower(body)

	// OTP and transaction are mutually exclusive, OTP wins
	if keywords.OTPTriggers.Contains(lower) {
		return reject(domain.ReasonOTPOverlap)
	}

	if IsStatement(lower) {
		return reject(domain.ReasonStatement)
	}

	if keywords.FalsePositives.Contains(lower) && !keywords.FalseNegativeOverrides.Contains(lower) {
		return reject(domain.ReasonFalsePositive)
	}

	if HasTransactionSignal(lower, senderAddress) {
		return accept()
	}

	return reject(domain.ReasonNoTransactionSignal)
}

// IsStatement reports whether lower is a bill or statement notice
func IsStatement(lower string) bool {
	if keywords.Statement.Contains(lower) {
		return true
	}
	return strings.Contains(lower, "minimum") && strings.Contains(lower, "due")
}

// HasTransactionSignal reports whether lower carries a debit, credit or interest
// keyword, or comes from a known institution and mentions a currency amount
func HasTransactionSignal(lower, senderAddress string) bool {
	if keywords.Debit.Contains(lower) || keywords.Credit.Contains(lower) || keywords.Interest.Contains(lower) {
		return true
	}
	if IsPaymentReceived(lower) {
		return true
	}

	// Some bank alerts omit the verb but still carry the amount
	if !keywords.AmountPattern.MatchString(lower) {
		return false
	}
	if _, ok := keywords.LookupSender(senderAddress); ok {
		return true
	}
	_, ok := keywords.LookupBody(lower)
	return ok
}

// IsPaymentReceived reports whether lower says a payment was received, in either word order
func IsPaymentReceived(lower string) bool {
	return strings.Contains(lower, "payment") && strings.Contains(lower, "received")
}
