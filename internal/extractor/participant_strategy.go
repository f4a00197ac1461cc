package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
)

// ParticipantInput is what every participant strategy gets to look at
type ParticipantInput struct {
	Body      string
	Lower     string
	Direction domain.Direction
}

// ParticipantStrategy defines one way of finding the counterparty of a transaction
type ParticipantStrategy interface {
	Name() string
	Find(in ParticipantInput) (string, bool)
}

// DefaultParticipantStrategies returns the participant strategies in priority order
func DefaultParticipantStrategies() []ParticipantStrategy {
	return []ParticipantStrategy{
		NewOwnLineStrategy(),
		NewSpentAtStrategy(),
		NewPrepositionStrategy(),
	}
}

// FindParticipant runs strategies in order. An empty result means no counterparty, which is valid.
func FindParticipant(in ParticipantInput, strategies []ParticipantStrategy) string {
	// Alerts about a linked account name the account, not a counterparty
	if strings.Contains(in.Lower, "linked to your") {
		return ""
	}

	for _, strategy := range strategies {
		if name, ok := strategy.Find(in); ok {
			return name
		}
	}
	return ""
}

// OwnLineStrategy picks a merchant printed on its own line, as structured card alerts do
type OwnLineStrategy struct{}

func NewOwnLineStrategy() *OwnLineStrategy {
	return &OwnLineStrategy{}
}

func (s *OwnLineStrategy) Name() string { return "own-line" }

// Find implements the ParticipantStrategy interface
func (s *OwnLineStrategy) Find(in ParticipantInput) (string, bool) {
	lines := strings.Split(in.Body, "\n")
	if len(lines) <= 2 {
		return "", false
	}

	for _, line := range lines[2:] {
		candidate := strings.TrimSpace(line)
		n := len([]rune(candidate))
		if n < 4 || n > 25 {
			continue
		}
		if !isNameLine(candidate) || strings.Contains(strings.ToLower(candidate), "limit") {
			continue
		}
		if name, ok := validateParticipant(candidate); ok {
			return name, true
		}
	}
	return "", false
}

func isNameLine(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '.' && r != '&' {
			return false
		}
	}
	return true
}

// SpentAtStrategy reads card spends written as "spent @ MERCHANT"
type SpentAtStrategy struct{}

func NewSpentAtStrategy() *SpentAtStrategy {
	return &SpentAtStrategy{}
}

func (s *SpentAtStrategy) Name() string { return "spent-at" }

// Find implements the ParticipantStrategy interface
func (s *SpentAtStrategy) Find(in ParticipantInput) (string, bool) {
	if in.Direction != domain.Debit || !strings.Contains(in.Lower, "spent") {
		return "", false
	}
	match := keywords.SpentAtPattern.FindStringSubmatch(in.Body)
	if len(match) < 2 {
		return "", false
	}
	return CleanParticipant(match[1])
}

// PrepositionStrategy reads the words after "to/at/on/..." for debits and "from/by" for credits
type PrepositionStrategy struct{}

func NewPrepositionStrategy() *PrepositionStrategy {
	return &PrepositionStrategy{}
}

func (s *PrepositionStrategy) Name() string { return "preposition" }

// Find implements the ParticipantStrategy interface
func (s *PrepositionStrategy) Find(in ParticipantInput) (string, bool) {
	pattern := keywords.DebitPrepositionPattern
	if in.Direction == domain.Credit {
		pattern = keywords.CreditPrepositionPattern
	}

	candidates := prepositionCandidates(in.Body, pattern)

	// A credit names the payer after "from" more reliably than after "by"
	if in.Direction == domain.Credit {
		for _, c := range candidates {
			if c.preposition != "from" {
				continue
			}
			if name, ok := CleanParticipant(c.text); ok {
				return name, true
			}
		}
	}

	for _, c := range candidates {
		if name, ok := CleanParticipant(c.text); ok {
			return name, true
		}
	}
	return "", false
}

type prepositionCandidate struct {
	preposition string
	text        string
}

// prepositionCandidates returns the run following every preposition in body.
// Runs may overlap later prepositions, so each one is read independently.
func prepositionCandidates(body string, pattern *regexp.Regexp) []prepositionCandidate {
	var candidates []prepositionCandidate
	for _, m := range pattern.FindAllStringSubmatchIndex(body, -1) {
		run := keywords.ParticipantRunPattern.FindString(body[m[1]:])
		if run == "" {
			continue
		}
		candidates = append(candidates, prepositionCandidate{
			preposition: strings.ToLower(body[m[2]:m[3]]),
			text:        run,
		})
	}
	return candidates
}

// participantTerminators end a participant name
var participantTerminators = []string{".", "-", "(", " on ", " via ", " ending ", "\n", " ref", " bal", " using"}

// CleanParticipant cuts raw at the first clause terminator and rejects boilerplate
func CleanParticipant(raw string) (string, bool) {
	name := raw
	lower := strings.ToLower(name)

	cut := len(name)
	for _, t := range participantTerminators {
		if i := strings.Index(lower, t); i >= 0 && i < cut {
			cut = i
		}
	}
	return validateParticipant(strings.TrimSpace(name[:cut]))
}

// validateParticipant rejects candidates that are reference numbers, links,
// channel names or too short to be a name
func validateParticipant(name string) (string, bool) {
	name = strings.Join(strings.Fields(name), " ")
	if len(name) <= 2 {
		return "", false
	}

	lower := strings.ToLower(name)
	for _, token := range keywords.ParticipantIgnore {
		if lower == token || (strings.HasPrefix(lower, token) && keywords.EndsWord(lower, len(token))) {
			return "", false
		}
	}

	if startsWithCurrency(lower) {
		return "", false
	}

	digits := 0
	for _, r := range name {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits > 3 {
		return "", false
	}

	if strings.Contains(lower, "http") || strings.Contains(lower, "www") {
		return "", false
	}

	return name, true
}

// startsWithCurrency reports whether lower opens with a currency token that is
// not the start of a longer word
func startsWithCurrency(lower string) bool {
	for _, token := range keywords.ParticipantCurrencyTokens {
		if !strings.HasPrefix(lower, token) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(lower[len(token):])
		if next == utf8.RuneError || !unicode.IsLetter(next) {
			return true
		}
	}
	return false
}
