package keywords

import "regexp"

var (
	// Amount: currency marker followed by a comma grouped number with up to 2 decimals.
	// Captures the number (e.g., 2,500.00 from "Rs.2,500.00 debited")
	AmountPattern = regexp.MustCompile(`(?i)(?:\brs\.?|\binr\.?|₹)\s*(\d[\d,]*(?:\.\d{1,2})?)`)

	// OTP candidate: a 4-8 digit run on word boundaries, neighbours are checked separately
	OTPCandidatePattern = regexp.MustCompile(`\b\d{4,8}\b`)

	// Institution named in the body: "<word> bank", "<word> credit card", "<word> card" (e.g., "kotak bank")
	BodySourcePattern = regexp.MustCompile(`(?i)\b([a-z]{3,15})\s+(bank|credit card|debit card|card)\b`)

	// Account reference: "A/c XX1234", "account no. 1234", "card ending with 4321".
	// Callers still check the reference carries a digit or mask ("account has" is not one)
	AccountFallbackPattern = regexp.MustCompile(`(?i)\b(a/c|account|card)\s+(?:(?:no\.?|number|ending(?:\s+with)?)\s*)?([a-z0-9*]{3,15})`)

	// Card spend with merchant after @ (e.g., "spent @ SWIGGY on")
	SpentAtPattern = regexp.MustCompile(`(?i)spent\s?@\s?([a-z0-9\s*]{3,20})`)

	// Prepositions introducing the counterparty of a debit or a credit
	DebitPrepositionPattern  = regexp.MustCompile(`(?i)\b(to|at|towards|in|on|via)\s+`)
	CreditPrepositionPattern = regexp.MustCompile(`(?i)\b(from|by)\s+`)

	// Counterparty run that follows a preposition
	ParticipantRunPattern = regexp.MustCompile(`(?i)^[a-z0-9\s@.&*-]{3,30}`)
)

// SourceGuardWords must not directly precede an institution or account reference;
// "to HDFC bank" names the payee's bank, not the user's
var SourceGuardWords = NewSet(nil, []string{"on", "from", "to", "via"})
