package companionsdk

import "fmt"

// ──────────────────────────────────────────────
// Multi-Label Emotion Extractor
// ──────────────────────────────────────────────

// emotionScanCategory is one of the six categories the extractor scans
// independently of reply generation.
type emotionScanCategory struct {
	label    Label
	keywords []string
}

var emotionScanCategories = []emotionScanCategory{
	{LabelAngry, angerKeywords},
	{LabelOverthinking, overthinkingKeywords},
	{LabelStress, stressKeywords},
	{LabelSad, sadnessKeywords},
	{LabelAnxiety, anxietyKeywords},
	{LabelLonely, lonelinessKeywords},
}

// ScanEmotionCategories returns every one of the six core emotion categories
// matching the message, in scan order.
func ScanEmotionCategories(message string) []Label {
	norm := NormalizeText(message)
	var hits []Label
	for _, c := range emotionScanCategories {
		if containsAnyWord(norm, c.keywords) != "" {
			hits = append(hits, c.label)
		}
	}
	return hits
}

// matchesExploration reports whether the user is asking to actively work on
// something (rather than just venting).
func matchesExploration(norm string) bool {
	return containsAnyWord(norm, explorationPatterns) != ""
}

// combinedEmotionReply names the first two matched categories and asks which
// feels heavier. Used when two or more categories co-occur with an
// exploration request.
func combinedEmotionReply(hits []Label) string {
	return fmt.Sprintf(
		"%s and %s can interact with each other, and it makes sense that both showed up at once. "+
			"We can absolutely explore this together, one thread at a time. "+
			"Which one feels heavier right now?",
		hits[0].Display(), hits[1].Display(),
	)
}
