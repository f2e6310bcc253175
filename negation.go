package companionsdk

// ──────────────────────────────────────────────
// Negative-Modifier Override Detector
// ──────────────────────────────────────────────

// Positive words that a nearby negation flips into a negative signal.
var positiveMoodWords = []string{
	"good", "great", "fine", "okay", "ok", "alright",
	"nice", "happy", "awesome", "amazing",
}

// Negation markers. Multi-word entries match as word-boundary phrases.
var negatorPhrases = []string{
	"not", "no", "never", "don't", "dont", "can't", "cant",
	"doesn't", "doesnt", "isn't", "isnt", "ain't", "wasn't", "wasnt",
	"won't", "wont", "couldn't", "didn't", "nothing",
	"not really", "actually not", "but not",
}

// negatorTokens is the single-token subset used by the window scan.
var negatorTokens = map[string]bool{
	"not": true, "no": true, "never": true,
	"don't": true, "dont": true, "can't": true, "cant": true,
	"doesn't": true, "doesnt": true, "isn't": true, "isnt": true,
	"ain't": true, "wasn't": true, "wasnt": true,
	"won't": true, "wont": true, "couldn't": true, "didn't": true,
	"nothing": true,
}

const negationWindow = 4

// NegativeOverrideDetector decides whether superficially positive wording is
// actually negated ("okay but not good"). It is deliberately high-recall: a
// positive word and a negator anywhere in the same message trigger the
// override even outside the ±4-token window. Some neutral sentences will be
// caught; that precision/recall trade-off is pinned by tests and must not be
// "fixed" silently.
type NegativeOverrideDetector struct{}

// NewNegativeOverrideDetector creates a detector over the built-in word sets.
func NewNegativeOverrideDetector() *NegativeOverrideDetector {
	return &NegativeOverrideDetector{}
}

// Detect reports whether the message's positive wording is negated.
func (d *NegativeOverrideDetector) Detect(message string) bool {
	norm := NormalizeText(message)

	if containsAnyWord(norm, positiveMoodWords) == "" {
		return false
	}
	if containsAnyWord(norm, negatorPhrases) == "" {
		return false
	}

	// Window scan: a negator within ±4 tokens of any positive token.
	tokens := Tokenize(message)
	positive := map[string]bool{}
	for _, p := range positiveMoodWords {
		positive[p] = true
	}
	for i, tok := range tokens {
		if !positive[tok] {
			continue
		}
		lo := i - negationWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + negationWindow
		if hi >= len(tokens) {
			hi = len(tokens) - 1
		}
		for j := lo; j <= hi; j++ {
			if j != i && negatorTokens[tokens[j]] {
				return true
			}
		}
	}

	// Conservative fallback: both signals present anywhere in the message.
	return true
}
