package realism

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Text below avoids every pattern so only the fallback rules can decide.
const (
	calmShort = "paint the fence"
	calmLong  = "Repaint every single wooden fence panel around the backyard garden"
	calmWordy = "I want to paint the garage door a nice shade of blue before the spring rains arrive"
)

func TestClassify_PatternTiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tier
	}{
		{"delusional billionaire", "I will become a billionaire!!!", TierDelusional},
		{"optimistic language", "learn a new language", TierOptimistic},
		{"achievable water", "drink more water", TierAchievable},
		{"case insensitive", "DRINK MORE WATER", TierAchievable},
		{"gap between phrases", "save a little bit of money every paycheck", TierOptimistic},
		{"phrase spans lines", "drink\nmore water", TierAchievable},
		{"alternation stands alone", "program a robot", TierOptimistic},
		{"delusional beats optimistic", "learn to code and become famous", TierDelusional},
		{"optimistic beats achievable", "meditate and drink water", TierOptimistic},
	}

	c := NewClassifier(WithRand(NewSeededRand(1)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.text)
			assert.Equal(t, tt.want, res.Tier)
			assert.Equal(t, "pattern:"+string(tt.want), res.Rule)
			assert.False(t, res.Pinned, "pattern matches should draw a payload")
			assert.Contains(t, Responses(tt.want), res.Payload)
		})
	}
}

func TestClassify_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTier  Tier
		wantIndex int
		wantRule  string
	}{
		{"too many words", calmWordy, TierDelusional, 0, "fallback:overflow"},
		{"shouting", "paint the fence!!!", TierDelusional, 0, "fallback:overflow"},
		{"long text", calmLong, TierOptimistic, 1, "fallback:length"},
		{"short text", calmShort, TierAchievable, 2, "fallback:default"},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The fallback payload is fixed, not drawn: every call must agree.
			// This asymmetry with the pattern path is deliberate and observable.
			for i := 0; i < 50; i++ {
				res := c.Classify(tt.text)
				require.Equal(t, tt.wantTier, res.Tier)
				require.Equal(t, tt.wantRule, res.Rule)
				require.True(t, res.Pinned)
				require.Equal(t, tt.wantIndex, res.Index)
				require.Equal(t, Responses(tt.wantTier)[tt.wantIndex], res.Payload)
			}
		})
	}
}

func TestClassify_WordBoundary(t *testing.T) {
	fifteen := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen"
	require.Equal(t, 15, WordCount(fifteen))

	res := Classify(fifteen)
	assert.Equal(t, TierOptimistic, res.Tier, "15 words is not an overflow; the length rule applies")
	assert.Equal(t, 1, res.Index)

	res = Classify(fifteen + " sixteen")
	assert.Equal(t, TierDelusional, res.Tier)
	assert.Equal(t, 0, res.Index)
}

func TestClassify_WordsSplitOnAnyWhitespace(t *testing.T) {
	text := strings.Repeat("z\t", 8) + strings.Repeat("z\n", 8)
	assert.Equal(t, 16, WordCount(text))
	assert.Equal(t, TierDelusional, Classify(text).Tier)
}

func TestClassify_LengthBoundary(t *testing.T) {
	assert.Equal(t, TierAchievable, Classify(strings.Repeat("z", MaxChars)).Tier)
	assert.Equal(t, TierOptimistic, Classify(strings.Repeat("z", MaxChars+1)).Tier)

	// Characters, not bytes.
	assert.Equal(t, TierAchievable, Classify(strings.Repeat("é", MaxChars)).Tier)
}

func TestClassify_UniformDraw(t *testing.T) {
	const draws = 3000
	c := NewClassifier(WithRand(NewSeededRand(42)))

	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		res := c.Classify("drink more water")
		require.Equal(t, TierAchievable, res.Tier)
		counts[res.Index]++
	}

	n := len(Responses(TierAchievable))
	require.Len(t, counts, n, "every payload should be drawn at least once")
	expected := draws / n
	for idx, got := range counts {
		assert.InDelta(t, expected, got, float64(expected)/5, "payload %d drawn %d times", idx, got)
	}
}

func TestClassify_SeededIsReproducible(t *testing.T) {
	a := NewClassifier(WithRand(NewSeededRand(7)))
	b := NewClassifier(WithRand(NewSeededRand(7)))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Classify("become famous").Index, b.Classify("become famous").Index)
	}
}

func TestClassify_FreshResultPerCall(t *testing.T) {
	first := Classify(calmShort)
	second := Classify(calmShort)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Payload, second.Payload)
}

func TestClassify_EmptyRulesFallsBackToDefault(t *testing.T) {
	c := NewClassifier(WithRules(nil))
	res := c.Classify("become a billionaire")
	assert.Equal(t, TierAchievable, res.Tier)
	assert.Equal(t, "fallback:default", res.Rule)
	assert.Equal(t, 2, res.Index)
}

type bogusRule struct{}

func (bogusRule) Name() string { return "bogus" }
func (bogusRule) Decide(string) (Decision, bool) {
	return Decision{Tier: "legendary", Payload: Draw}, true
}

func TestClassify_UnknownTierFallsBackToDefault(t *testing.T) {
	c := NewClassifier(WithRules([]Rule{bogusRule{}}))
	res := c.Classify("anything")
	assert.Equal(t, TierAchievable, res.Tier)
	assert.Equal(t, "fallback:default", res.Rule)
}
