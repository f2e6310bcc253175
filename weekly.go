package companionsdk

import (
	"fmt"
	"time"
)

// ──────────────────────────────────────────────
// Weekly Reflection Aggregator — pure rollup of labeled history
// ──────────────────────────────────────────────

// LabelDelta is a this-week/last-week pair with its difference.
type LabelDelta struct {
	ThisWeek int `json:"this_week"`
	LastWeek int `json:"last_week"`
	Delta    int `json:"delta"`
}

// WeekComparison holds week-over-week label counts and raw activity.
type WeekComparison struct {
	Emotions map[Label]LabelDelta `json:"emotions"`
	Activity LabelDelta           `json:"activity"`
}

// WeeklySummary is the computed reflection over the last seven days. It has
// no persisted lifecycle: identical inputs and "now" produce an identical
// summary.
type WeeklySummary struct {
	MostCommonEmotion  Label          `json:"most_common_emotion"`
	BestMoment         string         `json:"best_moment,omitempty"`
	ToughestMoment     string         `json:"toughest_moment,omitempty"`
	Pattern            string         `json:"pattern,omitempty"`
	GrowthSuggestion   string         `json:"growth_suggestion"`
	HourHeatmap        [24]int        `json:"hour_heatmap"`
	WeekComparison     WeekComparison `json:"week_comparison"`
	TimePattern        string         `json:"time_pattern,omitempty"`
	EmotionFreqPattern string         `json:"emotion_freq_pattern,omitempty"`
}

// SummarizeOptions configures the aggregation. Locale only affects weekday
// formatting in moment strings; unsupported locales fall back to English.
type SummarizeOptions struct {
	Locale string // BCP-47 tag, default "en-US"
}

// DefaultSummarizeOptions returns the baseline options.
func DefaultSummarizeOptions() SummarizeOptions {
	return SummarizeOptions{Locale: "en-US"}
}

const week = 7 * 24 * time.Hour

var toughLabelSet = map[Label]bool{
	LabelSad: true, LabelLonely: true, LabelHopeless: true,
	LabelStress: true, LabelAnxiety: true, LabelAngry: true,
	LabelConfusion: true,
}

var growthByEmotion = map[Label]string{
	LabelSad:          "Try one small mood-lifting ritual each morning this week, even five minutes of sunlight or music counts.",
	LabelLonely:       "Reach out to one person this week, even a short message. Connection compounds.",
	LabelHopeless:     "Pick one tiny promise to yourself each day and keep it. Rebuilding hope starts with rebuilding trust in yourself.",
	LabelStress:       "Block one protected, unbookable hour this week that belongs only to you.",
	LabelAnxiety:      "Practice one grounding exercise daily before the anxiety peaks, not after.",
	LabelAngry:        "When anger spikes this week, try writing the unsent message before saying anything out loud.",
	LabelConfusion:    "Take one decision you've been circling and write its options down side by side.",
	LabelOverthinking: "Give each worry a 10-minute appointment on paper, then close the notebook.",
	LabelHappy:        "Bank this good stretch: write down what's working so you can repeat it on purpose.",
	LabelFinancial:    "Spend twenty minutes this week listing essential expenses. Clarity lowers the volume of money worry.",
	LabelCareer:       "Name the one thing about work you can influence this week, and let the rest stay at the office.",
	LabelMotivation:   "Shrink your biggest goal into a two-minute starter version and do it daily.",
}

var growthByPattern = map[string]string{
	PatternOverthinking: "Your thoughts tend to loop. Try scheduling a daily 10-minute worry window and parking ruminations there.",
	PatternLateNight:    "Late nights are when your mind gets loudest. Try moving wind-down half an hour earlier this week.",
	PatternLoneliness:   "Loneliness shows up often in your week. One small reach-out a day can shift it.",
}

const genericGrowthSuggestion = "Keep showing up for yourself. One honest check-in a day is enough to build on."

// Behavioral pattern names.
const (
	PatternOverthinking = "Overthinking"
	PatternLateNight    = "Late night rumination"
	PatternLoneliness   = "Loneliness"
)

var patternKeywords = map[string][]string{
	PatternOverthinking: {"overthink", "overthinking", "can't stop thinking", "cant stop thinking", "what if"},
	PatternLateNight:    {"can't sleep", "cant sleep", "awake", "3am", "late night", "middle of the night"},
	PatternLoneliness:   {"lonely", "alone", "no one", "nobody"},
}

// patternOrder keeps tie-breaking deterministic.
var patternOrder = []string{PatternOverthinking, PatternLateNight, PatternLoneliness}

// SummarizeWeek rolls the last seven days of labeled conversation history
// into a WeeklySummary. Messages carry their own detection label when the
// backfill has annotated them; unlabeled user messages are classified on the
// fly. The function is pure: no I/O, no clock reads, no mutation of inputs.
func SummarizeWeek(messages []Message, training *TrainingData, now time.Time, opts ...SummarizeOptions) WeeklySummary {
	opt := DefaultSummarizeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	recent := filterWindow(messages, now.Add(-week), now)
	prior := filterWindow(messages, now.Add(-2*week), now.Add(-week))

	recentLabels := make([]Label, len(recent))
	for i, m := range recent {
		recentLabels[i] = messageLabel(m)
	}

	var s WeeklySummary
	s.MostCommonEmotion = mostCommonLabel(recentLabels, training)
	s.BestMoment = bestMoment(recent, recentLabels, opt.Locale)
	s.ToughestMoment = toughestMoment(recent, recentLabels, opt.Locale)
	s.Pattern = detectPattern(recent)

	nightCount := 0
	for _, m := range recent {
		hour := m.Timestamp.Hour()
		s.HourHeatmap[hour]++
		if dayPart(hour) == "night" {
			nightCount++
		}
	}
	if len(recent) > 0 && float64(nightCount)/float64(len(recent)) >= 0.3 {
		s.TimePattern = "Late night activity"
	}

	if top, count := topLabelCount(recentLabels); !top.IsNone() {
		if count >= 3 || (len(recent) > 0 && float64(count)/float64(len(recent)) >= 0.4) {
			s.EmotionFreqPattern = "Frequent " + top.Display()
		}
	}

	s.WeekComparison = compareWeeks(recentLabels, prior)
	s.WeekComparison.Activity = LabelDelta{
		ThisWeek: len(recent),
		LastWeek: len(prior),
		Delta:    len(recent) - len(prior),
	}

	s.GrowthSuggestion = growthSuggestion(s.MostCommonEmotion, s.Pattern)
	return s
}

func filterWindow(messages []Message, from, to time.Time) []Message {
	var out []Message
	for _, m := range messages {
		if m.Timestamp.After(from) && !m.Timestamp.After(to) {
			out = append(out, m)
		}
	}
	return out
}

// messageLabel resolves a message's label: attached detection metadata first,
// then on-the-fly classification for user messages.
func messageLabel(m Message) Label {
	if m.Detection != nil {
		return m.Detection.Label
	}
	if m.Role == RoleUser {
		return LabelOf(m.Content)
	}
	return LabelNone
}

func topLabelCount(labels []Label) (Label, int) {
	counts := map[Label]int{}
	for _, l := range labels {
		if !l.IsNone() {
			counts[l]++
		}
	}
	var top Label
	best := 0
	for _, l := range AllLabels { // stable iteration order
		if counts[l] > best {
			best = counts[l]
			top = l
		}
	}
	return top, best
}

func mostCommonLabel(labels []Label, training *TrainingData) Label {
	if top, _ := topLabelCount(labels); !top.IsNone() {
		return top
	}
	if training == nil || len(training.EmotionCounts) == 0 {
		return LabelNone
	}
	// Fallback: highest persisted counter, folding legacy synonym keys.
	counts := map[Label]int{}
	for key, n := range training.EmotionCounts {
		if l := ParseLabel(key); !l.IsNone() {
			counts[l] += n
		}
	}
	var top Label
	best := 0
	for _, l := range AllLabels {
		if counts[l] > best {
			best = counts[l]
			top = l
		}
	}
	return top
}

func bestMoment(recent []Message, labels []Label, locale string) string {
	for i := len(recent) - 1; i >= 0; i-- {
		m := recent[i]
		if m.Role != RoleUser {
			continue
		}
		if containsAnyWord(NormalizeText(m.Content), bestMomentKeywords) != "" {
			return formatMoment(m, locale)
		}
	}
	for i := len(recent) - 1; i >= 0; i-- {
		if labels[i] == LabelHappy {
			return formatMoment(recent[i], locale)
		}
	}
	return ""
}

func toughestMoment(recent []Message, labels []Label, locale string) string {
	for i := len(recent) - 1; i >= 0; i-- {
		m := recent[i]
		if m.Role != RoleUser {
			continue
		}
		if containsAnyWord(NormalizeText(m.Content), toughMomentKeywords) != "" {
			return formatMoment(m, locale)
		}
	}
	for i := len(recent) - 1; i >= 0; i-- {
		if toughLabelSet[labels[i]] {
			return formatMoment(recent[i], locale)
		}
	}
	return ""
}

func formatMoment(m Message, locale string) string {
	return fmt.Sprintf("%s — %s", m.Content, weekdayName(m.Timestamp.Weekday(), locale))
}

// weekdayName formats a weekday for the locale tag. Only English names ship
// with the library; every other tag falls back to English rather than
// dragging CLDR data into a pure classifier.
func weekdayName(wd time.Weekday, locale string) string {
	_ = locale // accepted for forward compatibility, English names only
	return wd.String()
}

func detectPattern(recent []Message) string {
	counts := map[string]int{}
	for _, m := range recent {
		norm := NormalizeText(m.Content)
		for name, kws := range patternKeywords {
			if containsAnyWord(norm, kws) != "" {
				counts[name]++
			}
		}
	}
	best := ""
	bestCount := 0
	for _, name := range patternOrder {
		if counts[name] > bestCount {
			bestCount = counts[name]
			best = name
		}
	}
	return best
}

func compareWeeks(recentLabels []Label, prior []Message) WeekComparison {
	thisWeek := map[Label]int{}
	for _, l := range recentLabels {
		if !l.IsNone() {
			thisWeek[l]++
		}
	}
	lastWeek := map[Label]int{}
	for _, m := range prior {
		if l := messageLabel(m); !l.IsNone() {
			lastWeek[l]++
		}
	}
	emotions := map[Label]LabelDelta{}
	for _, l := range AllLabels {
		tw, lw := thisWeek[l], lastWeek[l]
		if tw == 0 && lw == 0 {
			continue
		}
		emotions[l] = LabelDelta{ThisWeek: tw, LastWeek: lw, Delta: tw - lw}
	}
	return WeekComparison{Emotions: emotions}
}

func growthSuggestion(top Label, pattern string) string {
	if s, ok := growthByEmotion[top]; ok {
		return s
	}
	if s, ok := growthByPattern[pattern]; ok {
		return s
	}
	return genericGrowthSuggestion
}

// dayPart buckets an hour into morning/afternoon/evening/night.
func dayPart(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	case hour >= 18 && hour < 23:
		return "evening"
	default:
		return "night"
	}
}
