package speech_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/sms-alert-classifier/internal/speech"
)

func TestToSpokenWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "zero"},
		{"0.00", "zero"},
		{"5", "5"},
		{"100", "100"},
		{"1000", "1 thousand"},
		{"2500", "2 thousands 500"},
		{"250000", "2 lakhs 50 thousands"},
		{"100000", "1 lakh"},
		{"10000000", "1 crore"},
		{"123456789", "12 crores 34 lakhs 56 thousands 789"},
		{"10000001", "1 crore 1"},
		{"45.50", "45 and 50 paise"},
		{"1.01", "1 and 1 paisa"},
		{"0.75", "75 paise"},
		{"0.01", "1 paisa"},
		{"99.999", "100"},
		{"100000000000000000000", "10000000000000 crores"},
		{"18446744073709551617", "1844674407370 crores 95 lakhs 51 thousands 617"},
		{"9223372036854775808.50", "922337203685 crores 47 lakhs 75 thousands 808 and 50 paise"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := speech.ToSpokenWords(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("ToSpokenWords(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestToSpokenWords_NoZeroGroups(t *testing.T) {
	for _, amount := range []string{"10000000", "10000100", "100001", "1000.5"} {
		got := speech.ToSpokenWords(decimal.RequireFromString(amount))
		if strings.HasPrefix(got, "0 ") || strings.Contains(got, " 0 ") {
			t.Errorf("Expected no zero-valued group for %s, got %q", amount, got)
		}
	}
}

func TestToSpokenWords_SmallAmountsHaveNoLargeUnits(t *testing.T) {
	got := speech.ToSpokenWords(decimal.NewFromInt(100))
	if strings.Contains(got, "crore") || strings.Contains(got, "lakh") {
		t.Errorf("Expected no crore or lakh for 100, got %q", got)
	}
}
