package companionsdk

import "testing"

func TestNegativeOverride_WindowedNegation(t *testing.T) {
	d := NewNegativeOverrideDetector()

	cases := []string{
		"not good",
		"i'm not okay",
		"i don't feel fine",
		"it was never great",
	}
	for _, msg := range cases {
		if !d.Detect(msg) {
			t.Errorf("Detect(%q) = false, want true", msg)
		}
	}
}

func TestNegativeOverride_ConservativeFallback(t *testing.T) {
	d := NewNegativeOverrideDetector()

	// Negator far outside the ±4-token window still triggers. High recall
	// over precision is the documented contract here.
	msg := "things were okay at the start of the week even though my brother said he would never visit"
	if !d.Detect(msg) {
		t.Fatalf("Detect(%q) = false, want true via anywhere-fallback", msg)
	}
}

func TestNegativeOverride_NoPositiveWord(t *testing.T) {
	d := NewNegativeOverrideDetector()

	if d.Detect("i will not go there") {
		t.Fatal("negator without a positive word must not trigger")
	}
	if d.Detect("today was wonderful") {
		t.Fatal("positive word without a negator must not trigger")
	}
	if d.Detect("") {
		t.Fatal("empty input must not trigger")
	}
}

func TestNegativeOverride_ForcesSadLabel(t *testing.T) {
	cases := []string{
		"not good",
		"okay but not good",
		"it's fine, but actually not",
	}
	for _, msg := range cases {
		if got := LabelOf(msg); got != LabelSad {
			t.Errorf("LabelOf(%q) = %q, want %q", msg, got, LabelSad)
		}
	}
	for _, msg := range cases {
		labels := LabelsOf(msg)
		if len(labels) != 1 || labels[0] != LabelSad {
			t.Errorf("LabelsOf(%q) = %v, want [sad]", msg, labels)
		}
	}
}
