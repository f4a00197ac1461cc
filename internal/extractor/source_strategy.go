package extractor

import (
	"strings"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenericSource is used when no strategy can name the institution
const GenericSource = "Bank"

// SourceInput is what every source strategy gets to look at
type SourceInput struct {
	Body   string
	Lower  string
	Sender string
}

// SourceMatch is a resolved institution
type SourceMatch struct {
	Name     string
	Strategy string

	// Synthesized names ("Card ending 1234") are used as-is, without acronym spelling or kind suffix
	Synthesized bool
}

// SourceStrategy defines one way of naming the institution behind a message
type SourceStrategy interface {
	Name() string
	Resolve(in SourceInput) (SourceMatch, bool)
}

// DefaultSourceStrategies returns the source strategies in priority order
func DefaultSourceStrategies() []SourceStrategy {
	return []SourceStrategy{
		NewTideStrategy(),
		NewSenderCodeStrategy(),
		NewBodyCodeStrategy(),
		NewBodyNounStrategy(),
		NewAccountFallbackStrategy(),
	}
}

// TideStrategy recognises Tide cards, whose alerts come from generic senders
type TideStrategy struct{}

func NewTideStrategy() *TideStrategy {
	return &TideStrategy{}
}

func (s *TideStrategy) Name() string { return "tide" }

// Resolve implements the SourceStrategy interface
func (s *TideStrategy) Resolve(in SourceInput) (SourceMatch, bool) {
	if !strings.Contains(strings.ToUpper(in.Sender), "TIDE") && !strings.Contains(in.Lower, "tide card") {
		return SourceMatch{}, false
	}
	if strings.Contains(in.Lower, "ncmc travel") {
		return SourceMatch{Name: "Tide NCMC Travel Card", Strategy: s.Name()}, true
	}
	return SourceMatch{Name: "Tide Card", Strategy: s.Name()}, true
}

// SenderCodeStrategy looks the sender address up in the institution table
type SenderCodeStrategy struct{}

func NewSenderCodeStrategy() *SenderCodeStrategy {
	return &SenderCodeStrategy{}
}

func (s *SenderCodeStrategy) Name() string { return "sender-code" }

// Resolve implements the SourceStrategy interface
func (s *SenderCodeStrategy) Resolve(in SourceInput) (SourceMatch, bool) {
	inst, ok := keywords.LookupSender(in.Sender)
	if !ok {
		return SourceMatch{}, false
	}
	return SourceMatch{Name: inst.Name, Strategy: s.Name()}, true
}

// BodyCodeStrategy looks for institution codes and names in the message body
type BodyCodeStrategy struct{}

func NewBodyCodeStrategy() *BodyCodeStrategy {
	return &BodyCodeStrategy{}
}

func (s *BodyCodeStrategy) Name() string { return "body-code" }

// Resolve implements the SourceStrategy interface
func (s *BodyCodeStrategy) Resolve(in SourceInput) (SourceMatch, bool) {
	inst, ok := keywords.LookupBody(in.Lower)
	if !ok {
		return SourceMatch{}, false
	}
	return SourceMatch{Name: inst.Name, Strategy: s.Name()}, true
}

// BodyNounStrategy takes the word in front of "bank" or "card" as the institution name
type BodyNounStrategy struct{}

func NewBodyNounStrategy() *BodyNounStrategy {
	return &BodyNounStrategy{}
}

func (s *BodyNounStrategy) Name() string { return "body-noun" }

// Resolve implements the SourceStrategy interface
func (s *BodyNounStrategy) Resolve(in SourceInput) (SourceMatch, bool) {
	for _, m := range keywords.BodySourcePattern.FindAllStringSubmatchIndex(in.Body, -1) {
		wordStart, wordEnd := m[2], m[3]
		word := strings.ToLower(in.Body[wordStart:wordEnd])

		if keywords.SourceStopWords.Contains(word) || isGuarded(in.Body, wordStart) {
			continue
		}

		noun := strings.ToLower(in.Body[m[4]:m[5]])
		suffix := "Card"
		if noun == "bank" {
			suffix = "Bank"
		}

		// A Caser keeps state between calls, so each resolution gets its own
		name := cases.Title(language.English).String(word)
		if keywords.IsAcronym(word) {
			name = strings.ToUpper(word)
		}

		return SourceMatch{Name: appendSuffix(name, suffix), Strategy: s.Name()}, true
	}
	return SourceMatch{}, false
}

// AccountFallbackStrategy synthesizes "<Type> ending <last 4>" from an account or card reference
type AccountFallbackStrategy struct{}

func NewAccountFallbackStrategy() *AccountFallbackStrategy {
	return &AccountFallbackStrategy{}
}

func (s *AccountFallbackStrategy) Name() string { return "account-fallback" }

// Resolve implements the SourceStrategy interface
func (s *AccountFallbackStrategy) Resolve(in SourceInput) (SourceMatch, bool) {
	for _, m := range keywords.AccountFallbackPattern.FindAllStringSubmatchIndex(in.Body, -1) {
		if isGuarded(in.Body, m[0]) {
			continue
		}

		ref := in.Body[m[4]:m[5]]
		if !strings.ContainsAny(ref, "0123456789*") {
			continue
		}
		if len(ref) > 4 {
			ref = ref[len(ref)-4:]
		}

		kind := "Account"
		if strings.EqualFold(in.Body[m[2]:m[3]], "card") {
			kind = "Card"
		}

		return SourceMatch{
			Name:        kind + " ending " + ref,
			Strategy:    s.Name(),
			Synthesized: true,
		}, true
	}
	return SourceMatch{}, false
}

// ResolveSource runs strategies in order and returns the first match,
// falling back to GenericSource
func ResolveSource(in SourceInput, strategies []SourceStrategy) SourceMatch {
	for _, strategy := range strategies {
		if match, ok := strategy.Resolve(in); ok {
			return match
		}
	}
	return SourceMatch{Name: GenericSource, Strategy: "generic"}
}

// DetectAccountKind reads the instrument type from lower
func DetectAccountKind(lower string) domain.AccountKind {
	switch {
	case strings.Contains(lower, "credit card") || strings.Contains(lower, "card ending"):
		return domain.CreditCard
	case strings.Contains(lower, "debit card"):
		return domain.DebitCard
	case strings.Contains(lower, "a/c") || strings.Contains(lower, "account"):
		return domain.BankAccount
	default:
		return domain.AccountUnknown
	}
}

// SpokenSource spells acronyms letter by letter and appends the account kind
// unless the name already says it
func SpokenSource(match SourceMatch, kind domain.AccountKind) string {
	if match.Synthesized {
		return match.Name
	}

	words := strings.Fields(match.Name)
	for i, w := range words {
		if keywords.IsAcronym(w) {
			words[i] = strings.Join(strings.Split(strings.ToUpper(w), ""), " ")
		}
	}
	name := strings.Join(words, " ")

	if kind == domain.AccountUnknown {
		return name
	}
	return appendSuffix(name, string(kind))
}

// appendSuffix appends suffix unless name already contains an equivalent word:
// any "Card" for card suffixes, "Account" for accounts, "Bank" for banks
func appendSuffix(name, suffix string) string {
	lowerName := strings.ToLower(name)
	equivalent := strings.ToLower(suffix)
	if strings.HasSuffix(equivalent, "card") {
		equivalent = "card"
	}
	if keywords.IndexWord(lowerName, equivalent) >= 0 {
		return name
	}
	return name + " " + suffix
}

// isGuarded reports whether the word before position start is a preposition
// that points at someone else's institution
func isGuarded(body string, start int) bool {
	before := strings.Fields(strings.ToLower(body[:start]))
	if len(before) == 0 {
		return false
	}
	return keywords.SourceGuardWords.Contains(before[len(before)-1])
}
