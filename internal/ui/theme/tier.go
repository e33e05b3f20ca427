package theme

import (
	"fmt"
	"image/color"

	"github.com/abhisek/realitycheck/internal/realism"
)

// Treatment is the visual style of a verdict card.
type Treatment struct {
	Icon   string
	Color  color.Color
	Accent string // Color name, for plain-text output
}

// ForTier maps a tier to its verdict card treatment. Every tier has one;
// an unknown tier is a programming error.
func ForTier(t realism.Tier) Treatment {
	switch t {
	case realism.TierAchievable:
		return Treatment{Icon: "✅", Color: Success, Accent: "green"}
	case realism.TierOptimistic:
		return Treatment{Icon: "⚡", Color: Warning, Accent: "yellow"}
	case realism.TierDelusional:
		return Treatment{Icon: "🚀", Color: Primary, Accent: "purple"}
	}
	panic(fmt.Sprintf("theme: no treatment for tier %q", t))
}
