package welcome

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

const bannerArt = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗██╗      █████╗ ██████╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██║     ██╔══██╗██╔══██╗
 ██╔████╔██║███████║   ██║   ███████║██║     ███████║██████╔╝
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║██║     ██╔══██║██╔══██╗
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║███████╗██║  ██║██████╔╝
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "M · A · T · H · L · A · B"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 62

// RenderBanner returns the MATHLAB banner in the given color, falling back
// to a single line when width cannot fit the block letters.
func RenderBanner(width int, fg color.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// DefaultBanner renders the banner in the primary color.
func DefaultBanner(width int) string {
	return RenderBanner(width, theme.Primary)
}
