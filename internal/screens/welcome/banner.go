package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casesim/internal/ui/theme"
)

const bannerArt = `
 ╔═╗╔═╗╔═╗╔═╗  ╔═╗╦╔╦╗
 ║  ╠═╣╚═╗║╣   ╚═╗║║║║
 ╚═╝╩ ╩╚═╝╚═╝  ╚═╝╩╩ ╩`

const bannerCompact = "C A S E  S I M"

// RenderBanner returns the CASE SIM banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
