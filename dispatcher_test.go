package companionsdk

import (
	"regexp"
	"strings"
	"testing"
)

func TestClassifyAndRespond_Deterministic(t *testing.T) {
	r := NewResponder()
	inputs := []string{
		"i feel lost",
		"hi",
		"i'm so angry",
		"ok",
		"i don't have money to invest right now",
		"how do I calm down when I'm anxious?",
	}
	for _, in := range inputs {
		a := r.ClassifyAndRespond(in, nil)
		b := r.ClassifyAndRespond(in, nil)
		if a != b {
			t.Errorf("ClassifyAndRespond(%q) not deterministic:\n%q\n%q", in, a, b)
		}
	}
}

func TestClassifyAndRespond_PriorityOrdering(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("i overthink a lot", nil)

	want := "Overthinking usually means your mind is trying hard to protect you from uncertainty. Let's slow it down and look at one thought at a time."
	if got != want {
		t.Fatalf("supportive reply expected:\n got %q\nwant %q", got, want)
	}
	for _, greeting := range greetingReplies {
		if got == greeting {
			t.Fatal("greeting rule must never capture an overthinking message")
		}
	}
}

func TestClassifyAndRespond_SupportiveLiteralContract(t *testing.T) {
	r := NewResponder()
	cases := map[string]string{
		"i feel lost":              "Feeling lost is often a sign that you're between chapters, not that you've failed. We can find your next small step together.",
		"can i trust you":          "You can. I'm here to listen without judging you, and what you share stays between us.",
		"i overthink a lot":        "Overthinking usually means your mind is trying hard to protect you from uncertainty. Let's slow it down and look at one thought at a time.",
		"i can't sleep":            "Nights get loud when the day finally goes quiet. Let's unload some of what's circling so your mind can rest.",
		"i feel empty":             "Emptiness is a feeling too, even when it feels like nothing. You don't have to fill it right away. Just tell me what today was like.",
		"i feel stuck":             "Stuck isn't permanent, it's just the pause before a different move. Let's find one tiny thing that's still in your control.",
		"nobody listens to me":     "I'm listening to every word. Right here, right now, you have my full attention.",
		"i'm tired of everything":  "Tired of everything usually means you've been strong about too many things at once. You can set some of it down here.",
		"i don't know what to do":  "Not knowing what to do is where every good plan starts. Tell me the situation and we'll sort the options together.",
		"i feel like giving up":    "Wanting to give up means you've been carrying this for a long time. Before you decide anything, let's lighten the load together.",
	}
	for in, want := range cases {
		if got := r.ClassifyAndRespond(in, nil); got != want {
			t.Errorf("supportive reply for %q:\n got %q\nwant %q", in, got, want)
		}
	}
}

func TestClassifyAndRespond_ComplimentShortCircuit(t *testing.T) {
	r := NewResponder()
	gratitude := regexp.MustCompile(`(?i)thank|appreciat|aww|glad`)
	compliments := []string{
		"you're so nice",
		"you are so kind",
		"you're the best",
		"you're awesome",
		"i like talking to you",
		"you help me a lot",
		"you're a good listener",
		"good bot",
		"you make me feel better",
		"you're amazing",
	}
	for _, in := range compliments {
		got := r.ClassifyAndRespond(in, nil)
		if !gratitude.MatchString(got) {
			t.Errorf("compliment %q: reply %q lacks a gratitude token", in, got)
		}
		if strings.Contains(got, "?") {
			t.Errorf("compliment %q: reply %q must not ask a question", in, got)
		}
		if len(got) >= 120 {
			t.Errorf("compliment %q: reply length %d, want < 120", in, len(got))
		}
	}
}

func TestClassifyAndRespond_FinancialPrecedence(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("i don't have money to invest right now", nil)

	if !regexp.MustCompile(`(?i)money|financial|debt|organize|calm|budget|broke|bills|rent`).MatchString(got) {
		t.Fatalf("financial reply missing expected vocabulary: %q", got)
	}
	if regexp.MustCompile(`(?i)file a complaint|sue`).MatchString(got) {
		t.Fatalf("financial reply must not suggest legal action: %q", got)
	}
	if !strings.Contains(got, "investment, tax, loan, or legal advice") {
		t.Fatalf("financial reply must disclaim professional advice: %q", got)
	}
}

func TestClassifyAndRespond_IncomeLossBeatsCareer(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("i lost my job and my boss never even warned me", nil)
	if got != financialCompositeReply {
		t.Fatalf("income loss must force the financial composite, got %q", got)
	}
}

func TestClassifyAndRespond_TechniquesBounds(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("give me techniques to calm down", nil)

	if !strings.HasPrefix(got, TechniquesHeader) {
		t.Fatalf("techniques reply must start with the fixed header, got %q", got)
	}
	bullets := strings.Count(got, "\n• ")
	if bullets < 3 || bullets > 7 {
		t.Fatalf("techniques reply has %d bullets, want 3..7", bullets)
	}
}

func TestClassifyAndRespond_MultiLabelExploration(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("i'm stressed and angry, help me work on it", nil)

	if !strings.Contains(got, "feels heavier") {
		t.Fatalf("combined exploration reply expected, got %q", got)
	}
	if !strings.Contains(got, LabelAngry.Display()) || !strings.Contains(got, LabelStress.Display()) {
		t.Fatalf("combined reply must name both categories, got %q", got)
	}
}

func TestClassifyAndRespond_NegatedPositiveForcesNegativeReply(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("everything is great but actually not really", nil)
	if got != negativeLeaningReply {
		t.Fatalf("negated positive must force the negative-leaning reply, got %q", got)
	}
}

func TestClassifyAndRespond_Storytelling_MembershipOnly(t *testing.T) {
	r := NewResponder()
	for i := 0; i < 20; i++ {
		got := r.ClassifyAndRespond("omg you won't believe what happened", nil)

		matchedTemplate := false
		for _, tpl := range storytellingTemplates {
			if strings.HasPrefix(got, tpl) {
				matchedTemplate = true
				break
			}
		}
		if !matchedTemplate {
			t.Fatalf("storytelling reply %q not built from a known template", got)
		}
		matchedFollowUp := false
		for _, fu := range storytellingFollowUps {
			if strings.HasSuffix(got, fu) {
				matchedFollowUp = true
				break
			}
		}
		if !matchedFollowUp {
			t.Fatalf("storytelling reply %q missing a known follow-up", got)
		}
	}
}

func TestClassifyAndRespond_GroundingBundleForBareHelp(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("i need some help please", nil)
	if !strings.Contains(got, "5-4-3-2-1") {
		t.Fatalf("bare help request should return the grounding bundle, got %q", got)
	}
}

func TestClassifyAndRespond_QuestionFallback(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("should i move to another city?", nil)
	if !strings.Contains(got, "smallest next action") {
		t.Fatalf("question fallback expected, got %q", got)
	}
}

func TestClassifyAndRespond_EmptyInput(t *testing.T) {
	r := NewResponder()
	if got := r.ClassifyAndRespond("", nil); got != "" {
		t.Fatalf("empty input must yield empty reply, got %q", got)
	}
	if got := r.ClassifyAndRespond("   ", nil); got != "" {
		t.Fatalf("whitespace input must yield empty reply, got %q", got)
	}
}

func TestClassifyAndRespond_GenericFallback(t *testing.T) {
	r := NewResponder()
	got := r.ClassifyAndRespond("the weather report said tomorrow brings scattered clouds", nil)
	if got != genericFallbackReply {
		t.Fatalf("unmatched input must resolve to the generic fallback, got %q", got)
	}
}

func TestClassifyAndRespond_EndToEndScenarios(t *testing.T) {
	r := NewResponder()

	t.Run("misspelling nudge", func(t *testing.T) {
		got := r.ClassifyAndRespond("I am confued and cannot figure it out", nil)
		if !strings.Contains(got, "Did you mean 'confused'") {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("calm mode breathing script", func(t *testing.T) {
		got := r.ClassifyAndRespond("how do I calm down when I'm anxious?", nil)
		if !strings.Contains(got, "safe here") {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("neutral confirmation with name", func(t *testing.T) {
		pctx := &PersonalizationContext{PersonalContext: PersonalContext{Name: "Aniket"}}
		got := r.ClassifyAndRespond("ok", pctx)
		if !strings.Contains(strings.ToLower(got), "aniket") {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("hopeless label", func(t *testing.T) {
		if got := LabelOf("i feel hopeless, everything is falling apart"); got != LabelHopeless {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("compliment tone", func(t *testing.T) {
		got := r.ClassifyAndRespond("you're so nice", nil)
		if !regexp.MustCompile(`(?i)thank|appreciat|aww|glad`).MatchString(got) {
			t.Fatalf("got %q", got)
		}
		if strings.Contains(got, "?") {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("breakup label and reply", func(t *testing.T) {
		msg := "i had a breakup and it still hurts"
		if got := LabelOf(msg); got != LabelBreakup {
			t.Fatalf("label %q", got)
		}
		got := r.ClassifyAndRespond(msg, nil)
		if !regexp.MustCompile(`(?i)heartbreak|sorry|missing`).MatchString(got) {
			t.Fatalf("reply %q", got)
		}
	})
}
