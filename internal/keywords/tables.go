package keywords

var (
	// OTPTriggers must be present for a message to be an OTP; any of them also
	// keeps a message out of the transaction path
	OTPTriggers = NewSet(
		[]string{"code", "otp", "verification", "verify", "secret", "one time", "password"},
		[]string{"pin"},
	)

	// OTPExclusions mark statements and fund reports that mention a password next to unrelated digits
	OTPExclusions = NewSet(
		[]string{"folio", "statement", "pan as the password", "to open", "pdf", "units"},
		[]string{"nav"},
	)

	// FalsePositives reject messages that carry transaction verbs without being one
	FalsePositives = NewSet(
		[]string{
			"ignore", "verification", "code", "otp", "secret", "login", "password",
			"wi-fi", "placing order", "recharge of", "dnd",
			"folio", "contribution", "failed", "premium", "unsuccessful", "requested",
			"insurance", "bill alert",
		},
		[]string{"nav"},
	)

	// FalseNegativeOverrides force acceptance even when a false positive keyword is present
	FalseNegativeOverrides = NewSet(
		[]string{"bharat bill payment system", "bbps", "payment successful"},
		nil,
	)

	// Statement marks bills and statements, which are informational
	Statement = NewSet(
		[]string{
			"statement is sent", "total amount due", "min amt due", "minimum due",
			"total due", "payment due", "amount due", "bill is generated", "e-statement",
		},
		nil,
	)

	Debit = NewSet(
		[]string{"debited", "spent", "withdrawn", "deducted", "debit", "txn of", "transaction", "purchase"},
		[]string{"sent", "paid"},
	)

	// StrongDebit is the subset of Debit that names the money movement itself.
	// "debit" and "transaction" also appear in credit alerts ("debit card", "UPI transaction").
	StrongDebit = NewSet(
		[]string{"debited", "spent", "withdrawn", "deducted", "purchase"},
		[]string{"sent", "paid"},
	)

	Credit = NewSet(
		[]string{"credited", "received", "topped up", "added to", "deposited", "earned", "refund"},
		nil,
	)

	Interest = NewSet(
		[]string{"interest"},
		[]string{"int of"},
	)

	// ParticipantIgnore lists leading tokens that mean a participant candidate is
	// boilerplate rather than a name
	ParticipantIgnore = []string{
		"info:", "ref:", "ref", "rtgs", "neft", "upi", "imps", "via", "using", "vide",
		"on", "at", "not you", "call", "to report", "towards",
		"bharat bill", "bbps", "team", "help", "helpline", "netbanking",
		"block", "sms", "urgent", "click", "link", "touch",
		"your", "you", "a/c", "ac", "account", "card", "the",
	}

	// ParticipantCurrencyTokens reject a candidate that starts with them unless a
	// letter follows, so "Rs500" and "INR 20" are rejected but "Rsk Traders" is not
	ParticipantCurrencyTokens = []string{"rs", "inr", "₹"}

	// SourceStopWords can never be an institution name even when followed by "bank" or "card"
	SourceStopWords = NewSet(nil, []string{
		"your", "the", "my", "our", "a", "an", "this", "that", "any", "of", "and", "for", "with",
		"debit", "credit", "prepaid", "virtual", "forex", "linked", "same", "other", "new",
		"from", "to", "on", "via", "by", "in", "at",
	})
)
