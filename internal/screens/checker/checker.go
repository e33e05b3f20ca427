package checker

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ctl "github.com/abhisek/realitycheck/internal/checker"
	"github.com/abhisek/realitycheck/internal/router"
	"github.com/abhisek/realitycheck/internal/screen"
	"github.com/abhisek/realitycheck/internal/screens/about"
	"github.com/abhisek/realitycheck/internal/ui/components"
	"github.com/abhisek/realitycheck/internal/ui/layout"
	"github.com/abhisek/realitycheck/internal/ui/theme"
)

const (
	prompt      = "What's your New Year's resolution?"
	placeholder = "e.g., 'Exercise 3 times a week' or 'Become a billionaire by March'"
	buttonLabel = "Check My Reality"

	inputRows = 3
	maxWidth  = 84
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// CheckerScreen is the resolution form plus the last verdict.
type CheckerScreen struct {
	ctrl   *ctl.Controller
	input  components.TextArea
	button components.Button
	focus  focusTarget
}

var _ screen.Screen = (*CheckerScreen)(nil)

// New creates a CheckerScreen backed by the given controller.
func New(ctrl *ctl.Controller) *CheckerScreen {
	s := &CheckerScreen{
		ctrl:  ctrl,
		input: components.NewTextArea(placeholder, inputRows),
	}
	s.input.SetValue(ctrl.Input())
	s.button = components.NewButton(buttonLabel, false, nil)
	return s
}

func (s *CheckerScreen) Title() string {
	return "Check"
}

func (s *CheckerScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CheckerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Check"},
		{Key: "Tab", Description: "Switch"},
		{Key: "Ctrl+L", Description: "Clear"},
		{Key: "F1", Description: "Tiers"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *CheckerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, s.forward(msg)
	}

	switch kmsg.String() {
	case "ctrl+s":
		s.submit()
		return s, nil
	case "tab":
		return s, s.toggleFocus()
	case "ctrl+l":
		s.input.Reset()
		s.ctrl.Reset()
		return s, nil
	case "f1":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: about.New()}
		}
	}

	if s.focus == focusButton {
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}
	return s, s.forward(msg)
}

// forward passes a message to the textarea and mirrors its text into the
// controller.
func (s *CheckerScreen) forward(msg tea.Msg) tea.Cmd {
	if s.focus != focusInput {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.ctrl.SetInput(s.input.Value())
	return cmd
}

func (s *CheckerScreen) submit() {
	s.ctrl.SetInput(s.input.Value())
	s.ctrl.Submit()
}

func (s *CheckerScreen) toggleFocus() tea.Cmd {
	if s.focus == focusInput {
		s.focus = focusButton
		s.input.Blur()
		s.button = components.NewButton(buttonLabel, true, func() tea.Cmd {
			s.submit()
			return nil
		})
		return nil
	}
	s.focus = focusInput
	s.button = components.NewButton(buttonLabel, false, nil)
	return s.input.Focus()
}

func (s *CheckerScreen) View(width, height int) string {
	w := width - 4
	if w > maxWidth {
		w = maxWidth
	}
	s.input.SetWidth(w)

	sections := []string{
		theme.Label.Render(prompt),
		s.input.View(),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, s.button.View()),
	}

	if res, ok := s.ctrl.Last(); ok {
		sections = append(sections, "", components.VerdictCard{Result: res, Width: w}.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
