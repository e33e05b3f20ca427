package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/realitycheck/internal/router"
	"github.com/abhisek/realitycheck/internal/screen"
	"github.com/abhisek/realitycheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	taglineAt    = 900 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

// The three tier icons light up one by one before the banner appears.
var iconFrames = []string{"✅", "⚡", "🚀"}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the checker.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	year         int
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by nextFactory. year is shown in the tagline.
func New(nextFactory func() screen.Screen, year int) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
		year:        year,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			// Stop ticking once the animation has settled.
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// Tagline returns the subtitle shown under the banner.
func Tagline(year int) string {
	return fmt.Sprintf("Let's be honest about your %d goals", year)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	lit := w.tickCount
	if lit > len(iconFrames) {
		lit = len(iconFrames)
	}
	icons := make([]string, len(iconFrames))
	for i := range iconFrames {
		if i < lit {
			icons[i] = iconFrames[i]
		} else {
			icons[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("··")
		}
	}
	sections = append(sections, strings.Join(icons, "   "))

	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width))
	}

	if w.elapsed >= taglineAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline(w.year))
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
