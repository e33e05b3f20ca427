// Package screen defines the contract between the router and the views it
// stacks: the welcome splash, the checker form and the tier guide.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/realitycheck/internal/ui/layout"
)

// Screen is one full-body view. The app draws the header and footer around it.
type Screen interface {
	// Init runs when the screen becomes active through New, Push or Replace.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly same) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body into the given area.
	View(width, height int) string

	// Title is shown in the middle of the header. Empty hides it.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
