package extractor_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/extractor"
	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
)

func sourceInput(body, sender string) extractor.SourceInput {
	return extractor.SourceInput{Body: body, Lower: strings.ToLower(body), Sender: sender}
}

func TestTideStrategy(t *testing.T) {
	strategy := extractor.NewTideStrategy()

	match, ok := strategy.Resolve(sourceInput("Rs 40 spent on your NCMC Travel card", "AX-TIDEPF"))
	if !ok || match.Name != "Tide NCMC Travel Card" {
		t.Errorf("Expected NCMC travel card, got %+v (ok=%v)", match, ok)
	}

	match, ok = strategy.Resolve(sourceInput("Rs 40 spent on your Tide card", ""))
	if !ok || match.Name != "Tide Card" {
		t.Errorf("Expected Tide Card, got %+v (ok=%v)", match, ok)
	}

	if _, ok := strategy.Resolve(sourceInput("Rs 40 spent", "HDFCBK")); ok {
		t.Errorf("Expected no match for non-Tide message")
	}
}

func TestSenderCodeStrategy_AllCodesResolve(t *testing.T) {
	strategies := extractor.DefaultSourceStrategies()

	for _, inst := range keywords.Institutions {
		match := extractor.ResolveSource(sourceInput("Rs 10 debited", "VM-"+inst.Code), strategies)
		if match.Strategy == "generic" {
			t.Errorf("Expected sender code %s not to fall through to the generic source", inst.Code)
		}
	}
}

func TestBodyNounStrategy(t *testing.T) {
	strategy := extractor.NewBodyNounStrategy()

	tests := []struct {
		body string
		want string
		ok   bool
	}{
		{"debited from your Saraswat Bank account", "Saraswat Bank", true},
		{"spent using Cosmos credit card", "Cosmos Card", true},
		{"spent on Cosmos credit card", "", false},
		{"paid from your debit card", "", false},
		{"transferred to Canara bank", "", false},
		{"UCO debit card used for Rs 10", "UCO Card", true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			match, ok := strategy.Resolve(sourceInput(tt.body, ""))
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v (%+v)", tt.ok, ok, match)
			}
			if match.Name != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, match.Name)
			}
		})
	}
}

func TestAccountFallbackStrategy(t *testing.T) {
	strategy := extractor.NewAccountFallbackStrategy()

	match, ok := strategy.Resolve(sourceInput("Rs 10 debited from account number 0012345678 today", ""))
	if ok {
		t.Errorf("Expected account after 'from' to be skipped, got %+v", match)
	}

	match, ok = strategy.Resolve(sourceInput("Your A/c XX5678 is debited", ""))
	if !ok || match.Name != "Account ending 5678" || !match.Synthesized {
		t.Errorf("Expected synthesized 'Account ending 5678', got %+v (ok=%v)", match, ok)
	}
	tests := []struct {
		body string
		want string
		ok   bool
	}{
		{"Your account has been debited with Rs 500", "", false},
		{"Your card is blocked", "", false},
		{"Card ending 4321 used for Rs 99", "Card ending 4321", true},
		{"Spent using card ending with 9876", "Card ending 9876", true},
		{"A/c no. ****4455 debited", "Account ending 4455", true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			match, ok := strategy.Resolve(sourceInput(tt.body, ""))
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v (%+v)", tt.ok, ok, match)
			}
			if match.Name != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, match.Name)
			}
		})
	}

	generic := extractor.ResolveSource(sourceInput("Your account has been debited with Rs 500", ""), extractor.DefaultSourceStrategies())
	if generic.Name != extractor.GenericSource {
		t.Errorf("Expected generic source for a reference without digits, got %+v", generic)
	}
}

func TestResolveSource_Generic(t *testing.T) {
	match := extractor.ResolveSource(sourceInput("Rs 10 debited", "+919876543210"), extractor.DefaultSourceStrategies())
	if match.Name != extractor.GenericSource || match.Strategy != "generic" {
		t.Errorf("Expected generic source, got %+v", match)
	}
}

func TestSpokenSource(t *testing.T) {
	tests := []struct {
		name  string
		match extractor.SourceMatch
		kind  domain.AccountKind
		want  string
	}{
		{"acronym spelled", extractor.SourceMatch{Name: "BOB"}, domain.AccountUnknown, "B O B"},
		{"account appended", extractor.SourceMatch{Name: "Kotak Bank"}, domain.BankAccount, "Kotak Bank Account"},
		{"card not duplicated", extractor.SourceMatch{Name: "Slice Card"}, domain.CreditCard, "Slice Card"},
		{"debit card not duplicated", extractor.SourceMatch{Name: "SBI Credit Card"}, domain.DebitCard, "S B I Credit Card"},
		{"synthesized kept", extractor.SourceMatch{Name: "Card ending 1234", Synthesized: true}, domain.CreditCard, "Card ending 1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractor.SpokenSource(tt.match, tt.kind); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDetectAccountKind(t *testing.T) {
	tests := []struct {
		lower string
		want  domain.AccountKind
	}{
		{"spent on your credit card", domain.CreditCard},
		{"card ending 1234", domain.CreditCard},
		{"via debit card", domain.DebitCard},
		{"your a/c xx12", domain.BankAccount},
		{"savings account", domain.BankAccount},
		{"paid via upi", domain.AccountUnknown},
	}

	for _, tt := range tests {
		if got := extractor.DetectAccountKind(tt.lower); got != tt.want {
			t.Errorf("DetectAccountKind(%q) = %q, want %q", tt.lower, got, tt.want)
		}
	}
}

func TestCleanParticipant(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"AMAZON PAY. Avl bal Rs", "AMAZON PAY", true},
		{"RAHUL SHARMA via UPI", "RAHUL SHARMA", true},
		{"FLIPKART on 12 Jan", "FLIPKART", true},
		{"ZOMATO Ref 4432", "ZOMATO", true},
		{"STORE (MUMBAI)", "STORE", true},
		{"theatre hall", "theatre hall", true},
		{"12-01-24 to X", "", false},
		{"UPI Ref 99887766", "", false},
		{"the store", "", false},
		{"SHOP 123456", "", false},
		{"www.example.com", "", false},
		{"  AB  ", "", false},
		{"your account", "", false},
		{"Rs500 charges", "", false},
		{"INR500 reversal", "", false},
		{"Rs. 20 cashback", "", false},
		{"₹500 fee", "", false},
		{"Rsk Traders", "Rsk Traders", true},
		{"Inrise Foods", "Inrise Foods", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := extractor.CleanParticipant(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v (%q)", tt.ok, ok, got)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPrepositionStrategy_RejectsCurrencyCandidates(t *testing.T) {
	tests := []struct {
		body      string
		direction domain.Direction
	}{
		{"Rs.250 debited from your a/c XX1234 towards Rs500 charges", domain.Debit},
		{"Rs 500 credited to your account by INR500 reversal", domain.Credit},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got := extractor.FindParticipant(extractor.ParticipantInput{
				Body:      tt.body,
				Lower:     strings.ToLower(tt.body),
				Direction: tt.direction,
			}, extractor.DefaultParticipantStrategies())
			if got != "" {
				t.Errorf("Expected no participant, got %q", got)
			}
		})
	}
}

func TestPrepositionStrategy_TriesEveryOccurrence(t *testing.T) {
	strategy := extractor.NewPrepositionStrategy()
	body := "Rs 10 sent on 12-01-24 to JOHN DOE."

	got, ok := strategy.Find(extractor.ParticipantInput{
		Body:      body,
		Lower:     strings.ToLower(body),
		Direction: domain.Debit,
	})
	if !ok || got != "JOHN DOE" {
		t.Errorf("Expected JOHN DOE, got %q (ok=%v)", got, ok)
	}
}

func TestSpentAtStrategy_DebitOnly(t *testing.T) {
	strategy := extractor.NewSpentAtStrategy()
	body := "Refund for Rs 10 spent @ CAFE credited"

	if _, ok := strategy.Find(extractor.ParticipantInput{Body: body, Lower: strings.ToLower(body), Direction: domain.Credit}); ok {
		t.Errorf("Expected spent-at strategy to skip credits")
	}
	got, ok := strategy.Find(extractor.ParticipantInput{Body: body, Lower: strings.ToLower(body), Direction: domain.Debit})
	if !ok || got != "CAFE credited" {
		t.Errorf("Expected 'CAFE credited', got %q (ok=%v)", got, ok)
	}
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		lower string
		want  domain.Direction
	}{
		{"rs 500 debited from a/c", domain.Debit},
		{"rs 500 credited to a/c", domain.Credit},
		{"refund of rs 500 processed", domain.Credit},
		{"rs 500 paid, cashback credited", domain.Debit},
		{"cashback credited for rs 500 paid", domain.Credit},
		{"interest of rs 5 credited", domain.Credit},
		{"int of rs 5 debited", domain.Credit},
		{"received payment of rs 500", domain.Credit},
		{"rs 500 charged", domain.Debit},
	}

	for _, tt := range tests {
		if got := extractor.ResolveDirection(tt.lower); got != tt.want {
			t.Errorf("ResolveDirection(%q) = %s, want %s", tt.lower, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		body        string
		wantAmount  string
		wantDisplay string
	}{
		{"Rs.2,500.00 debited", "2500", "2500"},
		{"INR 1,23,456.78 credited", "123456.78", "123456.78"},
		{"₹45.5 received", "45.5", "45.50"},
		{"rs 10 and Rs 20", "10", "10"},
	}

	for _, tt := range tests {
		amount, err := extractor.ParseAmount(tt.body)
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tt.body, err)
			continue
		}
		if !amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.body, amount, tt.wantAmount)
		}
		if got := extractor.DisplayAmount(amount); got != tt.wantDisplay {
			t.Errorf("DisplayAmount(%s) = %q, want %q", amount, got, tt.wantDisplay)
		}
	}
}
