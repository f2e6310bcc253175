package companionsdk

// ──────────────────────────────────────────────
// Label Classifier — independent of reply generation
// ──────────────────────────────────────────────

// classifierCategory is one step of the single-label precedence chain and
// one scan group of the multi-label variant.
type classifierCategory struct {
	name  string
	label Label
	match func(norm string) (trigger string, ok bool)
}

func keywordCategory(name string, label Label, keywords []string) classifierCategory {
	return classifierCategory{name: name, label: label, match: func(norm string) (string, bool) {
		hit := containsAnyWord(norm, keywords)
		return hit, hit != ""
	}}
}

func tableCategory(t RuleTable) classifierCategory {
	return classifierCategory{name: t.Category, label: t.Label, match: t.MatchTrigger}
}

// classifierChain is evaluated top to bottom for the single label.
//
// Career is deliberately checked before financial here, while the dispatcher
// resolves the same overlap the other way, and the classifier's income-loss
// set is broader than the dispatcher's. The two components are allowed to
// disagree on ambiguous inputs; tests pin the disagreement.
var classifierChain = []classifierCategory{
	{name: "calm", label: LabelCalm, match: func(norm string) (string, bool) {
		if isCalmCrisis(norm) {
			return "calm down", true
		}
		return "", false
	}},
	keywordCategory("income_loss", LabelFinancial, incomeLossClassifierKeywords),
	keywordCategory("hopelessness", LabelHopeless, hopelessKeywords),
	tableCategory(familyTable),
	tableCategory(friendshipTable),
	tableCategory(breakupTable),
	keywordCategory("loneliness", LabelLonely, lonelinessKeywords),
	tableCategory(selfWorthTable),
	tableCategory(studyTable),
	tableCategory(socialAnxietyTable),
	tableCategory(careerTable),
	keywordCategory("financial", LabelFinancial, financialKeywords),
	keywordCategory("sadness", LabelSad, sadnessKeywords),
	keywordCategory("stress", LabelStress, stressKeywords),
	keywordCategory("anxiety", LabelAnxiety, anxietyKeywords),
	keywordCategory("anger", LabelAngry, angerKeywords),
	keywordCategory("confusion", LabelConfusion, confusionKeywords),
	keywordCategory("overthinking", LabelOverthinking, overthinkingKeywords),
	keywordCategory("happiness", LabelHappy, happinessKeywords),
	keywordCategory("motivation", LabelMotivation, motivationKeywords),
	keywordCategory("fun", LabelFun, funToneKeywords),
}

var classifierNegation = NewNegativeOverrideDetector()

// LabelOf returns the single highest-precedence label for a message, or
// LabelNone. Well-formed input never fails; empty input yields LabelNone.
func LabelOf(message string) Label {
	l, _ := labelWithTrigger(message)
	return l
}

func labelWithTrigger(message string) (Label, *MatchedTrigger) {
	if message == "" {
		return LabelNone, nil
	}
	norm := NormalizeText(message)
	if classifierNegation.Detect(message) {
		hit := containsAnyWord(norm, positiveMoodWords)
		return LabelSad, &MatchedTrigger{Category: "negative_override", Trigger: hit}
	}
	for _, c := range classifierChain {
		if trigger, ok := c.match(norm); ok {
			return c.label, &MatchedTrigger{Category: c.name, Trigger: trigger}
		}
	}
	return LabelNone, nil
}

// LabelsOf returns every matching label for a message, de-duplicated, in
// first-match order. The negative-modifier override short-circuits to [Sad].
func LabelsOf(message string) []Label {
	if message == "" {
		return nil
	}
	if classifierNegation.Detect(message) {
		return []Label{LabelSad}
	}
	norm := NormalizeText(message)
	var labels []Label
	seen := map[Label]bool{}
	for _, c := range classifierChain {
		if _, ok := c.match(norm); ok && !seen[c.label] {
			seen[c.label] = true
			labels = append(labels, c.label)
		}
	}
	return labels
}

// Classify runs both the single-label and multi-label passes and reports the
// matched category and trigger behind the primary label. When Label is set
// it is always a member of Labels.
func Classify(message string, pctx *PersonalizationContext) DetectionResult {
	_ = pctx // reserved: classification reads no personalization today
	label, matched := labelWithTrigger(message)
	labels := LabelsOf(message)
	if !label.IsNone() {
		found := false
		for _, l := range labels {
			if l == label {
				found = true
				break
			}
		}
		if !found {
			labels = append([]Label{label}, labels...)
		}
	}
	return DetectionResult{
		Text:    message,
		Label:   label,
		Labels:  labels,
		Matched: matched,
	}
}
