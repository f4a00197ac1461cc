package keywords

import "strings"

// Set is an immutable group of lower-case keywords.
// Phrases match anywhere in the text, words only between word boundaries.
type Set struct {
	phrases []string
	words   []string
}

// NewSet creates a Set, lower-casing every entry
func NewSet(phrases []string, words []string) Set {
	s := Set{
		phrases: make([]string, 0, len(phrases)),
		words:   make([]string, 0, len(words)),
	}
	for _, p := range phrases {
		s.phrases = append(s.phrases, strings.ToLower(p))
	}
	for _, w := range words {
		s.words = append(s.words, strings.ToLower(w))
	}
	return s
}

// Contains reports whether any entry occurs in lower, which must already be lower-cased
func (s Set) Contains(lower string) bool {
	for _, p := range s.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, w := range s.words {
		if IndexWord(lower, w) >= 0 {
			return true
		}
	}
	return false
}

// Index returns the offset of the earliest entry occurring in lower, or -1
func (s Set) Index(lower string) int {
	best := -1
	for _, p := range s.phrases {
		if i := strings.Index(lower, p); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	for _, w := range s.words {
		if i := IndexWord(lower, w); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

// Entries returns a copy of all entries, phrases first
func (s Set) Entries() []string {
	out := make([]string, 0, len(s.phrases)+len(s.words))
	out = append(out, s.phrases...)
	return append(out, s.words...)
}

// IndexWord returns the offset of the first occurrence of w in s that is not
// glued to a letter or digit on either side, or -1
func IndexWord(s, w string) int {
	if w == "" {
		return -1
	}
	offset := 0
	for {
		i := strings.Index(s[offset:], w)
		if i < 0 {
			return -1
		}
		start := offset + i
		end := start + len(w)
		if StartsWord(s, start) && EndsWord(s, end) {
			return start
		}
		offset = start + 1
	}
}

// StartsWord reports whether nothing word-like directly precedes position i
func StartsWord(s string, i int) bool {
	return i <= 0 || !isWordByte(s[i-1])
}

// EndsWord reports whether nothing word-like directly follows a match ending at i
func EndsWord(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
