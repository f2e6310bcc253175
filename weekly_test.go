package companionsdk

import (
	"reflect"
	"testing"
	"time"
)

func weeklyFixture() ([]Message, time.Time) {
	// now is a Wednesday noon; three messages fall in the last seven days and
	// two in the week before that.
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "m4", Role: RoleUser, Content: "so stressed about everything", Timestamp: time.Date(2024, 5, 6, 20, 0, 0, 0, time.UTC)},
		{ID: "m5", Role: RoleUser, Content: "had a nice walk", Timestamp: time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)},
		{ID: "m1", Role: RoleUser, Content: "i feel so lonely tonight", Timestamp: time.Date(2024, 5, 13, 23, 30, 0, 0, time.UTC)},
		{ID: "m2", Role: RoleUser, Content: "i finished my project today, proud of it", Timestamp: time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC)},
		{ID: "m3", Role: RoleUser, Content: "feeling lonely again", Timestamp: time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)},
	}
	return msgs, now
}

func TestSummarizeWeek_Rollup(t *testing.T) {
	msgs, now := weeklyFixture()
	s := SummarizeWeek(msgs, nil, now)

	if s.MostCommonEmotion != LabelLonely {
		t.Errorf("MostCommonEmotion = %q, want %q", s.MostCommonEmotion, LabelLonely)
	}
	if s.BestMoment != "i finished my project today, proud of it — Tuesday" {
		t.Errorf("BestMoment = %q", s.BestMoment)
	}
	if s.ToughestMoment != "feeling lonely again — Wednesday" {
		t.Errorf("ToughestMoment = %q", s.ToughestMoment)
	}
	if s.Pattern != PatternLoneliness {
		t.Errorf("Pattern = %q, want %q", s.Pattern, PatternLoneliness)
	}
	if s.GrowthSuggestion != growthByEmotion[LabelLonely] {
		t.Errorf("GrowthSuggestion = %q", s.GrowthSuggestion)
	}
}

func TestSummarizeWeek_Heatmap(t *testing.T) {
	msgs, now := weeklyFixture()
	s := SummarizeWeek(msgs, nil, now)

	sum := 0
	for _, n := range s.HourHeatmap {
		sum += n
	}
	if sum != 3 {
		t.Fatalf("heatmap sums to %d, want 3 (recent messages only)", sum)
	}
	for _, hour := range []int{23, 10, 9} {
		if s.HourHeatmap[hour] != 1 {
			t.Errorf("HourHeatmap[%d] = %d, want 1", hour, s.HourHeatmap[hour])
		}
	}
}

func TestSummarizeWeek_TimeAndFrequencyPatterns(t *testing.T) {
	msgs, now := weeklyFixture()
	s := SummarizeWeek(msgs, nil, now)

	// One of three recent messages lands after 23:00, which crosses the 30%
	// night threshold.
	if s.TimePattern != "Late night activity" {
		t.Errorf("TimePattern = %q", s.TimePattern)
	}
	// Two of three recent messages are lonely, crossing the 40% ratio gate.
	if s.EmotionFreqPattern != "Frequent Loneliness" {
		t.Errorf("EmotionFreqPattern = %q", s.EmotionFreqPattern)
	}
}

func TestSummarizeWeek_WeekComparison(t *testing.T) {
	msgs, now := weeklyFixture()
	s := SummarizeWeek(msgs, nil, now)

	if got := s.WeekComparison.Activity; got != (LabelDelta{ThisWeek: 3, LastWeek: 2, Delta: 1}) {
		t.Errorf("Activity = %+v", got)
	}
	if got := s.WeekComparison.Emotions[LabelLonely]; got != (LabelDelta{ThisWeek: 2, LastWeek: 0, Delta: 2}) {
		t.Errorf("Emotions[lonely] = %+v", got)
	}
	if got := s.WeekComparison.Emotions[LabelStress]; got != (LabelDelta{ThisWeek: 0, LastWeek: 1, Delta: -1}) {
		t.Errorf("Emotions[stress] = %+v", got)
	}
	if _, ok := s.WeekComparison.Emotions[LabelHappy]; ok {
		t.Error("zero/zero labels must be omitted from the comparison map")
	}
}

func TestSummarizeWeek_Deterministic(t *testing.T) {
	msgs, now := weeklyFixture()
	a := SummarizeWeek(msgs, nil, now)
	b := SummarizeWeek(msgs, nil, now)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different summaries:\n%+v\n%+v", a, b)
	}
}

func TestSummarizeWeek_DetectionMetadataWins(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		{
			Role:      RoleAssistant,
			Content:   "reply text with no emotional wording",
			Timestamp: now.Add(-24 * time.Hour),
			Detection: &Detection{Label: LabelAnxiety},
		},
	}
	s := SummarizeWeek(msgs, nil, now)
	if s.MostCommonEmotion != LabelAnxiety {
		t.Fatalf("attached detection must win over classification, got %q", s.MostCommonEmotion)
	}
}

func TestSummarizeWeek_TrainingDataFallback(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	training := &TrainingData{EmotionCounts: map[string]int{
		"anger":   3, // legacy synonym spelling folds into "angry"
		"angry":   1,
		"sadness": 2,
	}}
	s := SummarizeWeek(nil, training, now)
	if s.MostCommonEmotion != LabelAngry {
		t.Fatalf("MostCommonEmotion = %q, want %q via persisted counters", s.MostCommonEmotion, LabelAngry)
	}
}

func TestSummarizeWeek_Empty(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	s := SummarizeWeek(nil, nil, now)
	if s.MostCommonEmotion != LabelNone {
		t.Errorf("MostCommonEmotion = %q, want none", s.MostCommonEmotion)
	}
	if s.BestMoment != "" || s.ToughestMoment != "" || s.TimePattern != "" {
		t.Errorf("empty history must yield empty moments: %+v", s)
	}
	if s.GrowthSuggestion != genericGrowthSuggestion {
		t.Errorf("GrowthSuggestion = %q", s.GrowthSuggestion)
	}
}

func TestDayPart(t *testing.T) {
	cases := map[int]string{
		0: "night", 5: "night", 6: "morning", 11: "morning",
		12: "afternoon", 17: "afternoon", 18: "evening", 22: "evening",
		23: "night",
	}
	for hour, want := range cases {
		if got := dayPart(hour); got != want {
			t.Errorf("dayPart(%d) = %q, want %q", hour, got, want)
		}
	}
}
