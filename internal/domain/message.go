package domain

import "time"

// Message represents an inbound SMS as handed over by the host app or read from an export
type Message struct {
	ID       string    `json:"id,omitempty"`
	ThreadID int64     `json:"thread_id,omitempty"`
	Address  string    `json:"address"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date,omitempty"`
}

// Result pairs a message with the classification produced for it
type Result struct {
	Message        Message        `json:"message"`
	Classification Classification `json:"classification"`
}
