package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/simplify/internal/ui/theme"
)

// BannerArt is the block-letter SIMPLIFY title.
const BannerArt = ` ███████╗██╗███╗   ███╗██████╗ ██╗     ██╗███████╗██╗   ██╗
 ██╔════╝██║████╗ ████║██╔══██╗██║     ██║██╔════╝╚██╗ ██╔╝
 ███████╗██║██╔████╔██║██████╔╝██║     ██║█████╗   ╚████╔╝
 ╚════██║██║██║╚██╔╝██║██╔═══╝ ██║     ██║██╔══╝    ╚██╔╝
 ███████║██║██║ ╚═╝ ██║██║     ███████╗██║██║        ██║
 ╚══════╝╚═╝╚═╝     ╚═╝╚═╝     ╚══════╝╚═╝╚═╝        ╚═╝`

// BannerCompact is the title for narrow terminals.
const BannerCompact = "S I M P L I F Y"

// BannerWidth is the display width of BannerArt.
const BannerWidth = 60

// RenderBanner returns the SIMPLIFY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
