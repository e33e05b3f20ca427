package realism

import "regexp"

// Pattern sources per tier. Each is compiled case-insensitively and matched
// anywhere in the text. "." also matches newlines so a phrase may continue
// onto the next line of a multi-line resolution.
var (
	delusionalSources = []string{
		`become.*billionaire`,
		`learn.*10.*languages`,
		`read.*100.*books`,
		`lose.*50.*pounds.*month`,
		`write.*novel.*week`,
		`run.*marathon.*never.*run`,
		`quit.*job.*become.*influencer`,
		`start.*5.*businesses`,
		`become.*ceo`,
		`viral`,
		`famous`,
		`perfect`,
		`never.*again`,
		`every.*day.*year`,
		`completely.*change`,
	}

	optimisticSources = []string{
		`learn.*language`,
		`run.*5k|10k`,
		`read.*\d+.*book`,
		`lose.*\d+.*pound`,
		`save.*money`,
		`start.*business`,
		`write.*book`,
		`get.*promotion`,
		`learn.*code|program`,
		`exercise.*week`,
		`meditate`,
	}

	achievableSources = []string{
		`drink.*water`,
		`sleep.*better`,
		`call.*friend`,
		`take.*walk`,
		`read.*more`,
		`cook.*home`,
		`less.*social.*media`,
		`organize`,
		`journal`,
		`stretch`,
	}
)

var patternSets = map[Tier]PatternSet{
	TierDelusional: mustCompileSet(TierDelusional, delusionalSources),
	TierOptimistic: mustCompileSet(TierOptimistic, optimisticSources),
	TierAchievable: mustCompileSet(TierAchievable, achievableSources),
}

// PatternSet is an ordered list of case-insensitive rules for one tier.
type PatternSet struct {
	Tier     Tier
	patterns []*regexp.Regexp
}

func mustCompileSet(t Tier, sources []string) PatternSet {
	set := PatternSet{Tier: t, patterns: make([]*regexp.Regexp, 0, len(sources))}
	for _, src := range sources {
		set.patterns = append(set.patterns, regexp.MustCompile(`(?is)`+src))
	}
	return set
}

// Patterns returns the pattern set for a tier.
func Patterns(t Tier) PatternSet {
	return patternSets[t]
}

// Match reports the first pattern that matches text, in list order.
func (s PatternSet) Match(text string) (string, bool) {
	for _, re := range s.patterns {
		if re.MatchString(text) {
			return re.String(), true
		}
	}
	return "", false
}

// Len returns the number of patterns in the set.
func (s PatternSet) Len() int { return len(s.patterns) }
