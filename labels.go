package companionsdk

// ──────────────────────────────────────────────
// Label — closed emotion/topic tag vocabulary
// ──────────────────────────────────────────────

// Label is a canonical tag summarizing a message's emotional or topical
// category, independent of any reply text. The zero value is LabelNone.
type Label string

const (
	LabelNone          Label = ""
	LabelSad           Label = "sad"
	LabelHappy         Label = "happy"
	LabelAngry         Label = "angry"
	LabelAnxiety       Label = "anxiety"
	LabelStress        Label = "stress"
	LabelConfusion     Label = "confusion"
	LabelOverthinking  Label = "overthinking"
	LabelLonely        Label = "lonely"
	LabelHopeless      Label = "hopeless"
	LabelBreakup       Label = "breakup"
	LabelFamily        Label = "family"
	LabelFriendship    Label = "friendship"
	LabelSelfWorth     Label = "self_worth"
	LabelStudy         Label = "study"
	LabelSocialAnxiety Label = "social_anxiety"
	LabelCareer        Label = "career"
	LabelFinancial     Label = "financial"
	LabelMotivation    Label = "motivation"
	LabelFun           Label = "fun"
	LabelCalm          Label = "calm"
)

// AllLabels lists every non-empty label in a stable order.
var AllLabels = []Label{
	LabelSad, LabelHappy, LabelAngry, LabelAnxiety, LabelStress,
	LabelConfusion, LabelOverthinking, LabelLonely, LabelHopeless,
	LabelBreakup, LabelFamily, LabelFriendship, LabelSelfWorth,
	LabelStudy, LabelSocialAnxiety, LabelCareer, LabelFinancial,
	LabelMotivation, LabelFun, LabelCalm,
}

var labelDisplayNames = map[Label]string{
	LabelSad:           "Sadness",
	LabelHappy:         "Happiness",
	LabelAngry:         "Anger",
	LabelAnxiety:       "Anxiety",
	LabelStress:        "Stress",
	LabelConfusion:     "Confusion",
	LabelOverthinking:  "Overthinking",
	LabelLonely:        "Loneliness",
	LabelHopeless:      "Hopelessness",
	LabelBreakup:       "Heartbreak",
	LabelFamily:        "Family",
	LabelFriendship:    "Friendship",
	LabelSelfWorth:     "Self-worth",
	LabelStudy:         "Study pressure",
	LabelSocialAnxiety: "Social anxiety",
	LabelCareer:        "Career",
	LabelFinancial:     "Financial stress",
	LabelMotivation:    "Motivation",
	LabelFun:           "Fun",
	LabelCalm:          "Calm",
}

// labelSynonyms maps legacy free-form emotion keys (from older stored
// training data) onto the closed vocabulary.
var labelSynonyms = map[string]Label{
	"anger":      LabelAngry,
	"angry":      LabelAngry,
	"happiness":  LabelHappy,
	"sadness":    LabelSad,
	"anxious":    LabelAnxiety,
	"stressed":   LabelStress,
	"confused":   LabelConfusion,
	"alone":      LabelLonely,
	"loneliness": LabelLonely,
	"money":      LabelFinancial,
	"finance":    LabelFinancial,
	"work":       LabelCareer,
	"job":        LabelCareer,
}

// IsNone reports whether the label is the empty "no category" value.
func (l Label) IsNone() bool { return l == LabelNone }

// Display returns the human-facing name of the label ("" for LabelNone).
func (l Label) Display() string {
	return labelDisplayNames[l]
}

// TrainingKey returns the key under which this label is counted in persisted
// emotion counters. Older data used a few synonym spellings; the canonical
// enum values already match the persisted keys, so this is the identity for
// every label today, kept as the single boundary for future renames.
func (l Label) TrainingKey() string {
	return string(l)
}

// ParseLabel resolves a stored emotion key (including legacy synonyms) to a
// Label. Unknown keys resolve to LabelNone.
func ParseLabel(key string) Label {
	if key == "" {
		return LabelNone
	}
	for _, l := range AllLabels {
		if string(l) == key {
			return l
		}
	}
	if l, ok := labelSynonyms[key]; ok {
		return l
	}
	return LabelNone
}
