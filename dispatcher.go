package companionsdk

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Intent Dispatcher — strict priority pipeline
// ──────────────────────────────────────────────

// dispatchInput carries everything a rule may inspect. Built once per call.
type dispatchInput struct {
	raw         string
	norm        string
	tokens      []string
	pctx        *PersonalizationContext
	negOverride bool
}

// dispatchRule is one step of the priority chain. respond returns ("", false)
// to pass to the next rule. The chain order is a contract: reordering rules
// changes which reply an ambiguous message receives, and tests assert the
// order directly.
type dispatchRule struct {
	name    string
	respond func(in *dispatchInput) (string, bool)
}

// Responder evaluates the rule chain and produces exactly one reply per
// message. It never returns an error: a non-match resolves to the generic
// fallback, and empty input yields an empty reply.
type Responder struct {
	negation *NegativeOverrideDetector
	chain    []dispatchRule

	rngMu sync.Mutex
	rng   *rand.Rand // storytelling branch only
}

// NewResponder creates a dispatcher over the built-in rule tables.
func NewResponder() *Responder {
	r := &Responder{
		negation: NewNegativeOverrideDetector(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	r.chain = r.buildChain()
	return r
}

var (
	defaultResponderOnce sync.Once
	defaultResponder     *Responder
)

// ClassifyAndRespond is the package-level entry point over a shared
// Responder. The context is optional; only the display name is read.
func ClassifyAndRespond(message string, pctx *PersonalizationContext) string {
	defaultResponderOnce.Do(func() { defaultResponder = NewResponder() })
	return defaultResponder.ClassifyAndRespond(message, pctx)
}

// ClassifyAndRespond runs the priority chain top to bottom and returns the
// first matching rule's reply.
func (r *Responder) ClassifyAndRespond(message string, pctx *PersonalizationContext) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ""
	}
	in := &dispatchInput{
		raw:         message,
		norm:        NormalizeText(trimmed),
		tokens:      Tokenize(trimmed),
		pctx:        pctx,
		negOverride: r.negation.Detect(message),
	}
	for _, rule := range r.chain {
		if reply, ok := rule.respond(in); ok {
			return reply
		}
	}
	return genericFallbackReply
}

const genericFallbackReply = "I'm here with you. Tell me a little more about what's going on, and we'll take it one step at a time."

const groundingBundleReply = "I've got you. Let's steady things first: " +
	"take one slow breath, then try 5-4-3-2-1 grounding. Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste. " +
	"When you're ready, tell me what kind of help you need, and we'll take it from there."

const negativeLeaningReply = "It sounds like things aren't actually okay, even if the words come out sounding fine. " +
	"You don't have to dress it up for me. What's really going on underneath?"

const questionFallbackReply = "That's a real question, and we can work through it together:\n" +
	"• First, get clear on what you actually want out of this.\n" +
	"• Next, break it into 3 small steps.\n" +
	"• Then pick the smallest next action and do only that.\n" +
	"Tell me a bit more and I'll help you with the first step."

func (r *Responder) buildChain() []dispatchRule {
	return []dispatchRule{
		{"neutral_confirmation", r.neutralConfirmation},
		{"compliment", r.compliment},
		{"financial_hardship", r.financialHardship},
		{"multi_label_exploration", r.multiLabelExploration},
		{"greeting", r.greeting},
		{"conversational", tableRule(conversationalTable)},
		{"anger", tableRule(angerTable)},
		{"income_loss_override", r.incomeLossOverride},
		{"career", tableRule(careerTable)},
		{"family", tableRule(familyTable)},
		{"friendship", tableRule(friendshipTable)},
		{"breakup", tableRule(breakupTable)},
		{"deep_loneliness", tableRule(deepLonelinessTable)},
		{"self_worth", tableRule(selfWorthTable)},
		{"study", tableRule(studyTable)},
		{"social_anxiety", tableRule(socialAnxietyTable)},
		{"supportive", tableRule(supportiveTable)},
		{"negative_mood", tableRule(negativeMoodTable)},
		{"positive_mood", r.positiveMood},
		{"coarse_tone", r.coarseTone},
		{"category_composites", r.categoryComposites},
		{"fun_fixed", tableRule(funFixedTable)},
		{"storytelling", r.storytelling},
		{"misspelling", r.misspelling},
		{"techniques", r.techniques},
		{"question_fallback", r.questionFallback},
	}
}

// tableRule adapts a fixed trigger→reply table into a chain step.
func tableRule(t RuleTable) func(in *dispatchInput) (string, bool) {
	return func(in *dispatchInput) (string, bool) {
		reply, _, ok := t.Match(in.norm)
		return reply, ok
	}
}

// Rule 1: short message made entirely of neutral confirmation vocabulary.
func (r *Responder) neutralConfirmation(in *dispatchInput) (string, bool) {
	if !IsShortMessage(in.raw) || len(in.tokens) == 0 {
		return "", false
	}
	joined := strings.Join(in.tokens, " ")
	if !neutralConfirmVocab[joined] {
		for _, tok := range in.tokens {
			if !neutralConfirmVocab[tok] {
				return "", false
			}
		}
	}
	nameSuffix := ""
	if name := in.pctx.DisplayName(); name != "" {
		nameSuffix = ", " + name
	}
	variant := neutralConfirmReplies[PickVariant(in.norm, len(neutralConfirmReplies))]
	return cleanupWhitespace(fmt.Sprintf(variant, nameSuffix)), true
}

// Rule 2: compliment about the assistant. Gratitude reply, no question mark.
func (r *Responder) compliment(in *dispatchInput) (string, bool) {
	if containsAnyWord(in.norm, complimentTriggers) == "" {
		return "", false
	}
	return complimentReplies[PickVariant(in.norm, len(complimentReplies))], true
}

// Rule 3: financial hardship always wins over generic stress/career flows.
func (r *Responder) financialHardship(in *dispatchInput) (string, bool) {
	if containsAnyWord(in.norm, financialKeywords) == "" &&
		containsAnyWord(in.norm, incomeLossKeywords) == "" {
		return "", false
	}
	return financialCompositeReply, true
}

// Rule 4: two or more core emotion categories plus an exploration request.
func (r *Responder) multiLabelExploration(in *dispatchInput) (string, bool) {
	hits := ScanEmotionCategories(in.raw)
	if len(hits) < 2 || !matchesExploration(in.norm) {
		return "", false
	}
	return combinedEmotionReply(hits), true
}

// Rule 5: greeting overrides all emotional flows.
func (r *Responder) greeting(in *dispatchInput) (string, bool) {
	if containsAnyWord(in.norm, greetingTriggers) == "" {
		return "", false
	}
	return greetingReplies[PickVariant(in.norm, len(greetingReplies))], true
}

// Rule 8: explicit income loss forces the financial composite even when
// career phrasing co-occurs.
func (r *Responder) incomeLossOverride(in *dispatchInput) (string, bool) {
	if containsAnyWord(in.norm, incomeLossKeywords) == "" {
		return "", false
	}
	return financialCompositeReply, true
}

// Rule 13: positive-mood table, unless the negative-modifier override caught
// a negated positive, which forces a negative-leaning reply instead.
func (r *Responder) positiveMood(in *dispatchInput) (string, bool) {
	if in.negOverride {
		return negativeLeaningReply, true
	}
	reply, _, ok := positiveMoodTable.Match(in.norm)
	return reply, ok
}

// Rule 14: coarse tone heuristics.
func (r *Responder) coarseTone(in *dispatchInput) (string, bool) {
	bare := strings.Join(in.tokens, " ")
	switch bare {
	case "how are you", "how are you doing", "how r u", "how are u":
		return "I'm doing well, thank you for asking. More importantly, how are you doing today?", true
	}
	if containsWord(in.norm, "help") && !hasCategoryKeyword(in.norm) {
		return groundingBundleReply, true
	}
	if containsAnyWord(in.norm, angerToneWords) != "" {
		return "There's real heat in that. Something clearly crossed a line. Tell me what happened.", true
	}
	if containsAnyWord(in.norm, negativeToneWords) != "" {
		return "That sounds genuinely rough. I'm sorry. Walk me through it.", true
	}
	if containsAnyWord(in.norm, positiveToneWords) != "" {
		return "I love hearing that energy from you. What made it so good?", true
	}
	return "", false
}

// Rule 15: ordered category keyword blocks, each yielding a composite.
// Technique requests skip the blocks and fall through to the library.
func (r *Responder) categoryComposites(in *dispatchInput) (string, bool) {
	if isTechniquesRequest(in.norm) {
		return "", false
	}
	block, _, ok := matchComposite(in.norm)
	if !ok {
		return "", false
	}
	return block.respond(in.norm), true
}

// Rule 17: fun/storytelling tone. The only non-deterministic branch; output
// is always one template plus one follow-up question.
func (r *Responder) storytelling(in *dispatchInput) (string, bool) {
	if !hasStorytellingTone(in.raw, in.norm) {
		return "", false
	}
	r.rngMu.Lock()
	tpl := storytellingTemplates[r.rng.Intn(len(storytellingTemplates))]
	fu := storytellingFollowUps[r.rng.Intn(len(storytellingFollowUps))]
	r.rngMu.Unlock()
	return tpl + " " + fu, true
}

func hasStorytellingTone(raw, norm string) bool {
	if containsAnyWord(norm, funToneKeywords) != "" {
		return true
	}
	if strings.Count(raw, "!") >= 2 {
		return true
	}
	for _, r := range raw {
		if r >= 0x1F300 && r <= 0x1FAFF {
			return true
		}
	}
	return false
}

// Rule 18: misspelling corrector — a clarifying nudge, never a silent guess.
func (r *Responder) misspelling(in *dispatchInput) (string, bool) {
	for _, tok := range in.tokens {
		if correct, ok := misspellingCorrections[tok]; ok {
			return fmt.Sprintf("Did you mean '%s'? If so, tell me a bit more about what's going on, and we'll untangle it together.", correct), true
		}
	}
	return "", false
}

// Rule 19: techniques-request mode.
func (r *Responder) techniques(in *dispatchInput) (string, bool) {
	if !isTechniquesRequest(in.norm) {
		return "", false
	}
	return BuildTechniques(in.raw), true
}

// Rule 20: always answer questions.
func (r *Responder) questionFallback(in *dispatchInput) (string, bool) {
	if strings.HasSuffix(strings.TrimSpace(in.raw), "?") {
		return questionFallbackReply, true
	}
	head := in.norm
	if len(head) > 40 {
		head = head[:40]
	}
	for _, q := range []string{"what", "how", "why", "when", "where", "should", "can", "could", "would"} {
		if containsWord(head, q) {
			return questionFallbackReply, true
		}
	}
	return "", false
}
