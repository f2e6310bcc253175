package companionsdk

// ──────────────────────────────────────────────
// Rule Table Registry — immutable, ordered trigger→reply tables
// ──────────────────────────────────────────────

// RuleEntry maps a non-empty set of normalized trigger phrases to one reply
// template. Trigger matching is always word-boundary based, never raw
// substring.
type RuleEntry struct {
	Triggers []string
	Reply    string
}

// RuleTable is the ordered rule list for one semantic category. Tables are
// built once at process start and never mutated.
type RuleTable struct {
	Category string
	Label    Label
	Entries  []RuleEntry
}

// Match returns the reply and trigger of the first entry whose trigger
// matches the normalized text, in table order.
func (t RuleTable) Match(norm string) (reply, trigger string, ok bool) {
	for _, e := range t.Entries {
		if hit := containsAnyWord(norm, e.Triggers); hit != "" {
			return e.Reply, hit, true
		}
	}
	return "", "", false
}

// MatchTrigger returns only the first matching trigger (label classification
// does not need the reply).
func (t RuleTable) MatchTrigger(norm string) (trigger string, ok bool) {
	_, trigger, ok = t.Match(norm)
	return trigger, ok
}

// fixedTable is shorthand for building a RuleTable literal.
func fixedTable(category string, label Label, entries ...RuleEntry) RuleTable {
	return RuleTable{Category: category, Label: label, Entries: entries}
}

// entry is shorthand for a RuleEntry literal.
func entry(reply string, triggers ...string) RuleEntry {
	return RuleEntry{Triggers: triggers, Reply: reply}
}
