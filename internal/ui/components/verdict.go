package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/realitycheck/internal/realism"
	"github.com/abhisek/realitycheck/internal/ui/theme"
)

// VerdictCard renders a classification result with its tier treatment.
type VerdictCard struct {
	Result realism.Result
	Width  int
}

// View renders the card. The border color and icon come from the tier.
func (v VerdictCard) View() string {
	tr := theme.ForTier(v.Result.Tier)

	inner := v.Width - 8 // border + padding
	if inner < 20 {
		inner = 20
	}
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	lines := []string{
		center.Render(tr.Icon),
		"",
		center.Inherit(lipgloss.NewStyle().Bold(true).Foreground(tr.Color)).Render(v.Result.Payload.Verdict),
		"",
		center.Inherit(theme.Body).Render(v.Result.Payload.Message),
		"",
		center.Render(theme.AdviceBox.Width(inner - 4).Render("💡 " + v.Result.Payload.Advice)),
	}

	return theme.Card.
		BorderForeground(tr.Color).
		Width(v.Width).
		Render(strings.Join(lines, "\n"))
}

// PlainVerdict renders a result without styling, for non-terminal output.
func PlainVerdict(r realism.Result) string {
	tr := theme.ForTier(r.Tier)
	var b strings.Builder
	b.WriteString(tr.Icon + " " + r.Payload.Verdict + " [" + tr.Accent + "]\n")
	b.WriteString(r.Payload.Message + "\n")
	b.WriteString("💡 " + r.Payload.Advice + "\n")
	return b.String()
}
