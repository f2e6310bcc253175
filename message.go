package companionsdk

import "time"

// ──────────────────────────────────────────────
// Data model — messages, detection metadata, personalization
// ──────────────────────────────────────────────

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MatchedTrigger records which rule-table category and trigger phrase
// produced a classification, for introspection and backfill metadata.
type MatchedTrigger struct {
	Category string `json:"category"`
	Trigger  string `json:"trigger"`
}

// Detection is classification metadata attached to assistant messages by the
// dispatcher's caller or the backfill utility. Once set it is never removed.
type Detection struct {
	Label   Label           `json:"label"`
	Matched *MatchedTrigger `json:"matched,omitempty"`
}

// Message is one chat message in a conversation history.
type Message struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	Detection *Detection `json:"detection,omitempty"`
}

// DetectionResult is the full output of Classify: the echoed input text, the
// primary label, every matching label, and the trigger behind the primary
// label. When Label is non-empty it is always a member of Labels.
type DetectionResult struct {
	Text    string          `json:"text"`
	Label   Label           `json:"label"`
	Labels  []Label         `json:"labels"`
	Matched *MatchedTrigger `json:"matched,omitempty"`
}

// UserPreferences captures how the user likes to be spoken to.
type UserPreferences struct {
	ConversationStyle string   `json:"conversation_style,omitempty"`
	TopicsOfInterest  []string `json:"topics_of_interest,omitempty"`
	CommonGreetings   []string `json:"common_greetings,omitempty"`
	EmotionalTone     string   `json:"emotional_tone,omitempty"`
}

// ConversationHistory is aggregate history the host app maintains per user.
// EmotionCounts is incremented only by the backfill utility.
type ConversationHistory struct {
	TotalMessages       int            `json:"total_messages"`
	FrequentTopics      []string       `json:"frequent_topics,omitempty"`
	EmotionCounts       map[string]int `json:"emotion_counts,omitempty"`
	SuccessfulResponses int            `json:"successful_responses"`
}

// PersonalContext is optional personal detail supplied by the host app.
type PersonalContext struct {
	Name         string   `json:"name,omitempty"`
	Goals        []string `json:"goals,omitempty"`
	Challenges   []string `json:"challenges,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// PersonalizationContext is read-only to the dispatcher (it only interpolates
// the display name); the backfill utility is the sole mutator, and only of
// ConversationHistory.EmotionCounts.
type PersonalizationContext struct {
	UserPreferences     UserPreferences     `json:"user_preferences"`
	ConversationHistory ConversationHistory `json:"conversation_history"`
	PersonalContext     PersonalContext     `json:"personal_context"`
}

// DisplayName returns the optional user name, or "".
func (c *PersonalizationContext) DisplayName() string {
	if c == nil {
		return ""
	}
	return c.PersonalContext.Name
}

// TrainingData holds persisted per-emotion counters keyed by Label training
// keys (legacy synonym spellings are folded on read via ParseLabel).
type TrainingData struct {
	EmotionCounts map[string]int `json:"emotion_counts,omitempty"`
}

// MigrationBundle is the unit the backfill utility reads, annotates, and
// writes back. MigrationVersion is monotonically non-decreasing; re-running
// an already-applied target version is a guaranteed no-op.
type MigrationBundle struct {
	Messages         []Message               `json:"messages"`
	Personality      *PersonalizationContext `json:"personality,omitempty"`
	TrainingData     *TrainingData           `json:"trainingData,omitempty"`
	MigrationVersion int                     `json:"_detectorMigrationVersion"`
}
