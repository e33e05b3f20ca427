package about

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/realitycheck/internal/realism"
	"github.com/abhisek/realitycheck/internal/router"
	"github.com/abhisek/realitycheck/internal/screen"
	"github.com/abhisek/realitycheck/internal/ui/layout"
	"github.com/abhisek/realitycheck/internal/ui/theme"
)

var descriptions = map[realism.Tier]string{
	realism.TierAchievable: "Small, concrete habits. Drink water, take a walk, keep a journal.",
	realism.TierOptimistic: "Possible with real discipline. New languages, savings, a first 5k.",
	realism.TierDelusional: "Billionaire by March. Famous. Perfect. Every day of the year.",
}

// AboutScreen lists the three tiers with their card treatment.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates a new AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Title() string {
	return "Tiers"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "f1":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	var rows []string
	for _, tier := range realism.Tiers() {
		tr := theme.ForTier(tier)
		verdict := realism.Responses(tier)[0].Verdict
		heading := lipgloss.NewStyle().Foreground(tr.Color).Bold(true).
			Render(fmt.Sprintf("%s  %s", tr.Icon, verdict))
		rows = append(rows, heading, theme.Hint.Render("    "+descriptions[tier]), "")
	}
	rows = append(rows, theme.Hint.Render(fmt.Sprintf(
		"No pattern? Over %d words or a %q means delusional; over %d characters means optimistic.",
		realism.MaxWords, realism.Shouting, realism.MaxChars)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n"))
}
