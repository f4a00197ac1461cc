package speech

import (
	"time"

	"github.com/google/uuid"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
)

// Utterance is one queued piece of speech
type Utterance struct {
	ID         uuid.UUID
	Text       string
	EnqueuedAt time.Time
}

// BuildUtterance builds the sentence spoken for a transaction. Commas give short
// pauses, the closing period a drop in pitch.
func BuildUtterance(rec domain.TransactionRecord) string {
	amount := rec.TTSAmount + " rupees"
	source := rec.SpokenSource
	if source == "" {
		source = rec.Source
	}

	switch {
	case rec.IsInterest:
		return "Interest received. " + amount + " credited to your " + source + "."
	case rec.IsDebit():
		if rec.HasParticipant() {
			return amount + ", paid to " + rec.Participant + ", from " + source + "."
		}
		return amount + ", paid from " + source + "."
	default:
		if rec.HasParticipant() {
			return amount + ", received from " + rec.Participant + ", to " + source + "."
		}
		return amount + ", received to " + source + "."
	}
}
