package extractor

import (
	"strings"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/speech"
)

// Extractor turns an accepted transaction message into a TransactionRecord
type Extractor struct {
	sources      []SourceStrategy
	participants []ParticipantStrategy
}

// Option configures an Extractor
type Option func(*Extractor)

// WithSourceStrategies replaces the default source strategies
func WithSourceStrategies(strategies ...SourceStrategy) Option {
	return func(e *Extractor) {
		e.sources = strategies
	}
}

// WithParticipantStrategies replaces the default participant strategies
func WithParticipantStrategies(strategies ...ParticipantStrategy) Option {
	return func(e *Extractor) {
		e.participants = strategies
	}
}

// NewExtractor creates an extractor with the default strategy lists unless overridden
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		sources:      DefaultSourceStrategies(),
		participants: DefaultParticipantStrategies(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds a record from body. The only failure is a missing amount,
// reported as ErrNoAmount; every other field degrades to a fallback.
func (e *Extractor) Extract(body, senderAddress string) (domain.TransactionRecord, error) {
	amount, err := ParseAmount(body)
	if err != nil {
		return domain.TransactionRecord{}, err
	}

	lower := strings.ToLower(body)
	signals := ReadDirectionSignals(lower)
	direction := signals.Resolve()

	source := ResolveSource(SourceInput{Body: body, Lower: lower, Sender: senderAddress}, e.sources)
	kind := DetectAccountKind(lower)

	participant := FindParticipant(ParticipantInput{
		Body:      body,
		Lower:     lower,
		Direction: direction,
	}, e.participants)

	return domain.TransactionRecord{
		Amount:         amount,
		DisplayAmount:  DisplayAmount(amount),
		TTSAmount:      speech.ToSpokenWords(amount),
		Source:         source.Name,
		SpokenSource:   SpokenSource(source, kind),
		AccountKind:    kind,
		SourceStrategy: source.Strategy,
		Direction:      direction,
		Participant:    participant,
		IsInterest:     signals.IsInterest,
	}, nil
}
