package realism

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRules_Order(t *testing.T) {
	var names []string
	for _, r := range DefaultRules() {
		names = append(names, r.Name())
	}
	want := []string{
		"pattern:delusional",
		"pattern:optimistic",
		"pattern:achievable",
		"fallback:overflow",
		"fallback:length",
		"fallback:default",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRules_NoMatch(t *testing.T) {
	rules := []Rule{&PatternRule{Set: Patterns(TierDelusional)}}
	d, name, ok := RunRules(rules, "drink water")
	if ok {
		t.Errorf("expected no match, got %+v from %q", d, name)
	}
	if name != "" {
		t.Errorf("got rule %q, want empty", name)
	}
}

func TestPatternRule_Draws(t *testing.T) {
	r := &PatternRule{Set: Patterns(TierOptimistic)}
	d, ok := r.Decide("start a business")
	if !ok {
		t.Fatal("expected optimistic pattern to match")
	}
	if d.Payload != Draw {
		t.Errorf("got payload %d, want Draw", d.Payload)
	}
}

func TestOverflowRule(t *testing.T) {
	r := &OverflowRule{}
	if _, ok := r.Decide("quietly hopeful"); ok {
		t.Error("short calm text should not overflow")
	}
	if d, ok := r.Decide("wow!!!"); !ok || d.Tier != TierDelusional || d.Payload != 0 {
		t.Errorf("got %+v, %v; want delusional/0", d, ok)
	}
	if _, ok := r.Decide("wow!!"); ok {
		t.Error("two exclamation marks should not overflow")
	}
}

func TestLengthRule(t *testing.T) {
	r := &LengthRule{}
	if _, ok := r.Decide(calmShort); ok {
		t.Error("short text should not trip the length rule")
	}
	d, ok := r.Decide(calmLong)
	if !ok || d.Tier != TierOptimistic || d.Payload != 1 {
		t.Errorf("got %+v, %v; want optimistic/1", d, ok)
	}
}

func TestDefaultRule_AlwaysApplies(t *testing.T) {
	d, ok := (&DefaultRule{}).Decide("")
	if !ok || d.Tier != TierAchievable || d.Payload != 2 {
		t.Errorf("got %+v, %v; want achievable/2", d, ok)
	}
}

func TestPatternSets_NonEmpty(t *testing.T) {
	for _, tier := range Tiers() {
		if Patterns(tier).Len() == 0 {
			t.Errorf("tier %s has no patterns", tier)
		}
		if len(Responses(tier)) < 3 {
			t.Errorf("tier %s has %d responses, fallbacks need at least 3", tier, len(Responses(tier)))
		}
	}
}

func TestPatternSet_MatchReportsPattern(t *testing.T) {
	got, ok := Patterns(TierAchievable).Match("Keep a journal")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "(?is)journal" {
		t.Errorf("got pattern %q, want %q", got, "(?is)journal")
	}
}

func TestResponses_ReturnsCopy(t *testing.T) {
	list := Responses(TierDelusional)
	list[0].Verdict = "mutated"
	if Responses(TierDelusional)[0].Verdict == "mutated" {
		t.Error("Responses should not expose the backing table")
	}
	if Responses("legendary") != nil {
		t.Error("unknown tier should have no responses")
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers() {
		got, err := ParseTier(" " + string(tier) + " ")
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %q, %v", tier, got, err)
		}
	}
	if _, err := ParseTier("Legendary"); err == nil {
		t.Error("expected error for unknown tier")
	}
	if got, _ := ParseTier("DELUSIONAL"); got != TierDelusional {
		t.Errorf("got %q, want delusional", got)
	}
}
