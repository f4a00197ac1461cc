package domain

import "github.com/shopspring/decimal"

// Direction represents whether money left or entered the user's account
type Direction string

// Transaction directions
const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// AccountKind represents the instrument a transaction was made with, when the message says so
type AccountKind string

// Account kinds
const (
	AccountUnknown AccountKind = ""
	CreditCard     AccountKind = "Credit Card"
	DebitCard      AccountKind = "Debit Card"
	BankAccount    AccountKind = "Account"
)

// TransactionRecord is the structured form of a transaction alert
type TransactionRecord struct {
	Amount        decimal.Decimal `json:"amount"`
	DisplayAmount string          `json:"display_amount"`
	TTSAmount     string          `json:"tts_amount"`

	// Source is the human readable institution name, e.g. "HDFC Bank"
	Source string `json:"source"`
	// SpokenSource is Source with acronyms spelled out and the account kind appended
	SpokenSource   string      `json:"spoken_source"`
	AccountKind    AccountKind `json:"account_kind,omitempty"`
	SourceStrategy string      `json:"source_strategy"`

	Direction Direction `json:"direction"`

	// Participant is empty when no counterparty could be found
	Participant string `json:"participant,omitempty"`
	IsInterest  bool   `json:"is_interest"`
}

func (r TransactionRecord) IsDebit() bool {
	return r.Direction == Debit
}

func (r TransactionRecord) HasParticipant() bool {
	return r.Participant != ""
}
