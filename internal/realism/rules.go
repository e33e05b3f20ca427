package realism

import (
	"strings"
	"unicode/utf8"
)

// Draw marks a Decision whose payload is picked uniformly at random.
const Draw = -1

const (
	// MaxWords is the word count (inclusive) above which unmatched text
	// falls back to delusional.
	MaxWords = 15

	// MaxChars is the character count (inclusive) above which unmatched
	// text falls back to optimistic.
	MaxChars = 50

	// Shouting is the punctuation run that forces the delusional fallback.
	Shouting = "!!!"
)

// Decision is what a rule concludes about a piece of text.
type Decision struct {
	Tier    Tier
	Payload int // Index into the tier's responses, or Draw
}

// Rule maps text to a decision. Returns false if the rule doesn't apply.
type Rule interface {
	Name() string
	Decide(text string) (Decision, bool)
}

// DefaultRules returns the classification rules in priority order.
// Pattern rules come first (delusional, optimistic, achievable); the
// fallback rules after them pin a fixed payload instead of drawing one.
// The final rule always applies.
func DefaultRules() []Rule {
	return []Rule{
		&PatternRule{Set: Patterns(TierDelusional)},
		&PatternRule{Set: Patterns(TierOptimistic)},
		&PatternRule{Set: Patterns(TierAchievable)},
		&OverflowRule{},
		&LengthRule{},
		&DefaultRule{},
	}
}

// RunRules evaluates rules in order and returns the first decision along
// with the deciding rule's name. Returns (Decision{}, "", false) if none apply.
func RunRules(rules []Rule, text string) (Decision, string, bool) {
	for _, r := range rules {
		if d, ok := r.Decide(text); ok {
			return d, r.Name(), true
		}
	}
	return Decision{}, "", false
}

// PatternRule matches a tier's pattern set and asks for a random payload.
type PatternRule struct {
	Set PatternSet
}

func (r *PatternRule) Name() string { return "pattern:" + string(r.Set.Tier) }

func (r *PatternRule) Decide(text string) (Decision, bool) {
	if _, ok := r.Set.Match(text); !ok {
		return Decision{}, false
	}
	return Decision{Tier: r.Set.Tier, Payload: Draw}, true
}

// OverflowRule flags long-winded or shouted resolutions as delusional.
type OverflowRule struct{}

func (r *OverflowRule) Name() string { return "fallback:overflow" }

func (r *OverflowRule) Decide(text string) (Decision, bool) {
	if WordCount(text) > MaxWords || strings.Contains(text, Shouting) {
		return Decision{Tier: TierDelusional, Payload: 0}, true
	}
	return Decision{}, false
}

// LengthRule treats wordy-but-calm resolutions as optimistic.
type LengthRule struct{}

func (r *LengthRule) Name() string { return "fallback:length" }

func (r *LengthRule) Decide(text string) (Decision, bool) {
	if utf8.RuneCountInString(text) > MaxChars {
		return Decision{Tier: TierOptimistic, Payload: 1}, true
	}
	return Decision{}, false
}

// DefaultRule accepts everything as achievable.
type DefaultRule struct{}

func (r *DefaultRule) Name() string { return "fallback:default" }

func (r *DefaultRule) Decide(string) (Decision, bool) {
	return Decision{Tier: TierAchievable, Payload: 2}, true
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
