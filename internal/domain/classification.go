package domain

// Kind represents the category a message was classified into
type Kind string

// Classification kinds
const (
	KindNone        Kind = "NONE"
	KindOTP         Kind = "OTP"
	KindTransaction Kind = "TRANSACTION"
)

// Reason explains why a message was not accepted as a transaction
type Reason string

// Rejection reasons
const (
	ReasonNone                Reason = ""
	ReasonOTPOverlap          Reason = "otp_overlap"
	ReasonStatement           Reason = "statement"
	ReasonFalsePositive       Reason = "false_positive"
	ReasonNoTransactionSignal Reason = "no_transaction_signal"
	ReasonNoAmount            Reason = "no_amount"
)

// Classification is the tagged result of running the pipeline over one message.
// Exactly one of Code (KindOTP) or Transaction (KindTransaction) is set.
type Classification struct {
	Kind        Kind               `json:"kind"`
	Code        string             `json:"code,omitempty"`
	Transaction *TransactionRecord `json:"transaction,omitempty"`
	Reason      Reason             `json:"reason,omitempty"`
}

// NewNone returns a classification for a message that is neither an OTP nor a transaction
func NewNone(reason Reason) Classification {
	return Classification{Kind: KindNone, Reason: reason}
}

// NewOTP returns an OTP classification carrying the extracted code
func NewOTP(code string) Classification {
	return Classification{Kind: KindOTP, Code: code}
}

// NewTransaction returns a transaction classification carrying the extracted record
func NewTransaction(rec TransactionRecord) Classification {
	return Classification{Kind: KindTransaction, Transaction: &rec}
}

func (c Classification) IsNone() bool {
	return c.Kind == KindNone || c.Kind == ""
}

func (c Classification) IsOTP() bool {
	return c.Kind == KindOTP
}

func (c Classification) IsTransaction() bool {
	return c.Kind == KindTransaction && c.Transaction != nil
}

// MessageClassifier defines the single entry point of the classification pipeline
type MessageClassifier interface {
	Classify(body, senderAddress string) Classification
}

// TransactionExtractor defines the interface for turning an accepted transaction message into a record
type TransactionExtractor interface {
	Extract(body, senderAddress string) (TransactionRecord, error)
}
