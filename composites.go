package companionsdk

import "strings"

// ──────────────────────────────────────────────
// Category composites — validation → clarify → guide
// ──────────────────────────────────────────────

// compositeBlock binds one keyword category to its multi-part response.
// Blocks are evaluated in a fixed order; the first matching block wins.
type compositeBlock struct {
	category string
	label    Label
	keywords []string
	respond  func(norm string) string
}

func staticComposite(reply string) func(string) string {
	return func(string) string { return reply }
}

const calmModeReply = "You're safe here with me. Let's slow everything down together.\n" +
	"Breathe in through your nose for 4 counts... hold for 4... and out through your mouth for 6.\n" +
	"Again. In for 4... hold... and out for 6.\n" +
	"Your body is allowed to settle. Nothing needs solving in this exact minute.\n" +
	"When your breathing evens out, tell me what set this off, and we'll face it slowly."

// The financial composite is shared by the hardship override, the explicit
// income-loss override, and the narrow keyword pass. It must stay supportive
// and practical, and must never offer investment, tax, loan, or legal advice.
const financialCompositeReply = "Money stress is one of the heaviest kinds of stress, and I hear how much pressure you're under. " +
	"Let's take one calm breath first, because panic makes every financial decision harder than it needs to be. " +
	"A small step that helps: write down your essential bills and your income, so the gap stops being a scary unknown and becomes a number you can organize around. " +
	"If you'd like, we can sketch a bare-bones budget together, one line at a time. " +
	"I can't give investment, tax, loan, or legal advice, but I can help you think clearly and calmly about your next step."

func deepTalkComposite(norm string) string {
	if containsWord(norm, "betrayed") || containsWord(norm, "betrayal") {
		return "Betrayal cuts deeper than ordinary hurt because it comes from someone you let inside your guard. " +
			"What you're feeling isn't overreaction, it's the honest response to broken trust. " +
			"Tell me what happened, and take as long as you need."
	}
	if containsWord(norm, "harden my heart") {
		return "Wanting to harden your heart makes sense after being hurt, but armor keeps out the good along with the bad. " +
			"You don't have to choose between feeling everything and feeling nothing. " +
			"What happened that made softness feel dangerous?"
	}
	return "This sounds like the real stuff, the kind most people never get to say out loud. " +
		"I'm not going anywhere, and nothing you say will be too heavy. " +
		"Start wherever it's easiest, and we'll go at your pace."
}

// compositeBlocks in strict order. The order is a contract; reordering
// changes which category claims an ambiguous message.
var compositeBlocks = []compositeBlock{
	{
		category: "hopelessness",
		label:    LabelHopeless,
		keywords: hopelessKeywords,
		respond: staticComposite("When everything feels hopeless, your mind is telling you the pain is real, not that the future is decided. " +
			"You've made it through every hard day so far, including the ones that felt impossible. " +
			"Let's not fix everything tonight. Let's just find one small thing that's still standing. What's one thing that hasn't fallen apart?"),
	},
	{
		category: "loneliness",
		label:    LabelLonely,
		keywords: lonelinessKeywords,
		respond: staticComposite("Loneliness is your heart asking for connection, and it takes courage to say it out loud. " +
			"Right now, in this conversation, you are not alone. " +
			"Tell me about your days lately. When does the loneliness get loudest?"),
	},
	{
		category: "deep_talk",
		label:    LabelSad,
		keywords: deepTalkKeywords,
		respond:  deepTalkComposite,
	},
	{
		category: "financial",
		label:    LabelFinancial,
		keywords: financialKeywords,
		respond:  staticComposite(financialCompositeReply),
	},
	{
		category: "calm",
		label:    LabelCalm,
		keywords: nil, // custom predicate, see isCalmCrisis
		respond:  staticComposite(calmModeReply),
	},
	{
		category: "sadness",
		label:    LabelSad,
		keywords: sadnessKeywords,
		respond: staticComposite("I'm really sorry you're feeling this way. Sadness deserves space, not a schedule. " +
			"You don't have to explain it perfectly or justify it at all. " +
			"What's been sitting heaviest on you today?"),
	},
	{
		category: "stress",
		label:    LabelStress,
		keywords: stressKeywords,
		respond: staticComposite("That's a lot of pressure to be carrying, and feeling stretched thin under it is completely human. " +
			"Stress shrinks when it's named, so let's name it. " +
			"If you had to point at the single biggest source right now, what would it be?"),
	},
	{
		category: "anxiety",
		label:    LabelAnxiety,
		keywords: anxietyKeywords,
		respond: staticComposite("Anxiety is your alarm system firing, even when there's no fire. The feeling is real even when the danger isn't. " +
			"Let's ground for a second: feel your feet, unclench your jaw, take one slow breath. " +
			"Now tell me, what is the worry saying might happen?"),
	},
	{
		category: "anger",
		label:    LabelAngry,
		keywords: angerKeywords,
		respond: staticComposite("That anger is information. Something that matters to you got crossed. " +
			"You don't need to calm down before talking to me, I can take it at full volume. " +
			"What happened, and what would feel like justice here?"),
	},
	{
		category: "confusion",
		label:    LabelConfusion,
		keywords: confusionKeywords,
		respond: staticComposite("Feeling confused usually means you're holding more pieces than anyone could sort at once. " +
			"Clarity comes from laying them out, not from thinking harder. " +
			"Walk me through it messily. What are the options, even the bad ones?"),
	},
	{
		category: "overthinking",
		label:    LabelOverthinking,
		keywords: overthinkingKeywords,
		respond: staticComposite("When your mind loops like this, it's trying to find certainty where there isn't any yet. " +
			"Let's interrupt the loop together. Pick the one thought that comes back the most. " +
			"Say it to me plainly, and we'll look at it in the light instead of letting it circle in the dark."),
	},
	{
		category: "happiness",
		label:    LabelHappy,
		keywords: happinessKeywords,
		respond: staticComposite("Yes! This is worth celebrating properly, not just scrolling past. " +
			"Moments like this are fuel for the harder days. " +
			"Tell me every detail. What happened, and how are you going to mark the occasion?"),
	},
	{
		category: "motivation",
		label:    LabelMotivation,
		keywords: motivationKeywords,
		respond: staticComposite("Low motivation isn't laziness, it's usually a signal that the task feels too big or the reward feels too far. " +
			"Confidence comes from evidence, and evidence comes from tiny wins. " +
			"What's the smallest possible version of the thing you're avoiding? Two minutes or less. Let's start there."),
	},
}

// matchComposite returns the first composite block matching the normalized
// text, honoring the calm block's custom predicate.
func matchComposite(norm string) (compositeBlock, string, bool) {
	for _, b := range compositeBlocks {
		if b.category == "calm" {
			if isCalmCrisis(norm) {
				return b, "calm down", true
			}
			continue
		}
		if hit := containsAnyWord(norm, b.keywords); hit != "" {
			return b, hit, true
		}
	}
	return compositeBlock{}, "", false
}

// hasCategoryKeyword reports whether any composite-block keyword (or the calm
// predicate) matches; the coarse help-request heuristic uses it to yield to
// stronger signals.
func hasCategoryKeyword(norm string) bool {
	_, _, ok := matchComposite(norm)
	return ok
}

// isTechniquesRequest reports whether the message is asking for concrete
// techniques rather than expressing the feeling itself. Technique requests
// skip the composite blocks and land in the technique library.
func isTechniquesRequest(norm string) bool {
	for _, w := range []string{"technique", "techniques", "tips", "exercises", "strategies"} {
		if containsWord(norm, w) {
			return true
		}
	}
	return false
}

// cleanupWhitespace collapses doubled spaces left behind by interpolation.
func cleanupWhitespace(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
