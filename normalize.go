package companionsdk

import (
	"strings"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Input Normalizer — lowercasing, quote folding, tokenization
// ──────────────────────────────────────────────

var quoteReplacer = strings.NewReplacer(
	"‘", "'", // left single curly quote
	"’", "'", // right single curly quote
	"“", `"`, // left double curly quote
	"”", `"`, // right double curly quote
)

// NormalizeText lowercases the message and folds curly quotes to straight
// ones. The original casing is never altered in place; callers keep the raw
// string for echoing into replies and summaries.
func NormalizeText(s string) string {
	return strings.ToLower(quoteReplacer.Replace(s))
}

// Tokenize splits normalized text into whitespace-delimited tokens with
// surrounding punctuation trimmed. Inner apostrophes survive ("don't").
func Tokenize(s string) []string {
	fields := strings.Fields(NormalizeText(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, ".,!?;:\"'()[]{}…")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// IsShortMessage reports whether a message qualifies for Neutral Confirmation
// Mode: at most 12 runes, or at most 2 whitespace-delimited words.
func IsShortMessage(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if utf8.RuneCountInString(trimmed) <= 12 {
		return true
	}
	return len(strings.Fields(trimmed)) <= 2
}
