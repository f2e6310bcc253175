package companionsdk

import "strings"

// ──────────────────────────────────────────────
// Technique library — categorized self-help techniques
// ──────────────────────────────────────────────

// TechniquesHeader is the fixed first line of every technique reply.
const TechniquesHeader = "Here are a few techniques you can try right now:"

const (
	minTechniques = 3
	maxTechniques = 7
)

type techniqueCategory struct {
	name    string
	infer   []string // keywords that select this category
	entries []string
}

// techniqueLibrary in presentation order. "calm" doubles as the padding
// source when fewer than three techniques are inferred.
var techniqueLibrary = []techniqueCategory{
	{
		name:  "calm",
		infer: []string{"calm", "anxious", "anxiety", "panic", "breathe", "breathing", "relax"},
		entries: []string{
			"Box breathing: in for 4, hold for 4, out for 4, hold for 4. Repeat five times.",
			"5-4-3-2-1 grounding: name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
			"Drop your shoulders, unclench your jaw, and exhale longer than you inhale.",
			"Hold something cold (a glass of water works) and focus only on the sensation for a minute.",
		},
	},
	{
		name:  "stress",
		infer: []string{"stress", "stressed", "overwhelmed", "pressure", "too much"},
		entries: []string{
			"Brain-dump everything on your mind onto paper, then circle only what's actually due today.",
			"Pick the single most stressful task and do just its first five minutes.",
			"Step away from all screens for ten minutes and walk, even if it's around the room.",
		},
	},
	{
		name:  "motivation",
		infer: []string{"motivation", "motivated", "lazy", "procrastinating", "procrastination", "start"},
		entries: []string{
			"Use the two-minute rule: commit to only two minutes of the task. Starting is the hard part.",
			"Shrink the goal until it sounds almost silly, then do that version.",
			"Pair the task with something you enjoy, like music you only play while working.",
		},
	},
	{
		name:  "anger",
		infer: []string{"anger", "angry", "mad", "temper", "furious"},
		entries: []string{
			"Write the angriest message you want to send, then delete it. The writing does the venting.",
			"Do sixty seconds of hard physical movement: stairs, push-ups, a brisk walk.",
			"Name the anger precisely: betrayed, dismissed, blocked. Precision cools it down.",
		},
	},
	{
		name:  "focus",
		infer: []string{"focus", "concentrate", "distracted", "distraction"},
		entries: []string{
			"Try one 25-minute timer with your phone in another room, then a 5-minute break.",
			"Write your current task on a sticky note and keep it in view. One task, one note.",
			"Close every tab and app that isn't the one thing you're doing.",
		},
	},
	{
		name:  "sleep",
		infer: []string{"sleep", "insomnia", "awake", "tired at night", "can't sleep", "cant sleep"},
		entries: []string{
			"Do a worry download: write tomorrow's worries on paper so your brain can stop rehearsing them.",
			"Try 4-7-8 breathing in bed: in for 4, hold for 7, out for 8.",
			"Dim the lights and put screens away 30 minutes before bed, and keep the wake-up time fixed.",
		},
	},
	{
		name:  "selflove",
		infer: []string{"myself", "confidence", "self-esteem", "self esteem", "worth", "worthless"},
		entries: []string{
			"Write down three things you did right today, however small. Evidence beats affirmation.",
			"Talk to yourself the way you'd talk to a friend in the same spot.",
			"Keep one promise to yourself today, tiny on purpose, and notice that you kept it.",
		},
	},
}

// BuildTechniques assembles a technique reply for the message: the fixed
// header plus 3 to 7 bullets drawn from categories inferred from keywords.
// When inference comes up short, the list is padded from the calm category.
func BuildTechniques(message string) string {
	norm := NormalizeText(message)

	var picked []string
	seen := map[string]bool{}
	add := func(entries []string) {
		for _, e := range entries {
			if len(picked) >= maxTechniques {
				return
			}
			if !seen[e] {
				seen[e] = true
				picked = append(picked, e)
			}
		}
	}

	for _, cat := range techniqueLibrary {
		if containsAnyWord(norm, cat.infer) != "" {
			add(cat.entries)
		}
	}

	// Pad to the minimum from the calm category.
	if len(picked) < minTechniques {
		add(techniqueLibrary[0].entries)
	}

	var b strings.Builder
	b.WriteString(TechniquesHeader)
	for _, t := range picked {
		b.WriteString("\n• ")
		b.WriteString(t)
	}
	return b.String()
}
