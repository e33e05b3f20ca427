package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/realitycheck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗ █████╗ ██╗     ██╗████████╗██╗   ██╗
 ██╔══██╗██╔════╝██╔══██╗██║     ██║╚══██╔══╝╚██╗ ██╔╝
 ██████╔╝█████╗  ███████║██║     ██║   ██║    ╚████╔╝
 ██╔══██╗██╔══╝  ██╔══██║██║     ██║   ██║     ╚██╔╝
 ██║  ██║███████╗██║  ██║███████╗██║   ██║      ██║
 ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝   ╚═╝      ╚═╝
            c  h  e  c  k`

const bannerCompact = "R E A L I T Y   C H E C K"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 58 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 58 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
