package realism

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tier classifies how realistic a resolution is.
type Tier string

const (
	TierAchievable Tier = "achievable"
	TierOptimistic Tier = "optimistic"
	TierDelusional Tier = "delusional"
)

// Tiers returns all tiers in match priority order.
func Tiers() []Tier {
	return []Tier{TierDelusional, TierOptimistic, TierAchievable}
}

// ParseTier resolves a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierAchievable:
		return TierAchievable, nil
	case TierOptimistic:
		return TierOptimistic, nil
	case TierDelusional:
		return TierDelusional, nil
	}
	return "", fmt.Errorf("unknown tier %q", s)
}

func (t Tier) String() string { return string(t) }

// Payload is the verdict/message/advice triple shown for a classification.
type Payload struct {
	Verdict string `json:"verdict" yaml:"verdict"`
	Message string `json:"message" yaml:"message"`
	Advice  string `json:"advice" yaml:"advice"`
}

// Result is the output of a single classification.
type Result struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Tier    Tier      `json:"tier" yaml:"tier"`
	Payload Payload   `json:"payload" yaml:"payload"`
	Rule    string    `json:"rule" yaml:"rule"`     // Name of the rule that decided the tier
	Index   int       `json:"index" yaml:"index"`   // Position of Payload within the tier's responses
	Pinned  bool      `json:"pinned" yaml:"pinned"` // True when a fallback rule fixed Index
}
