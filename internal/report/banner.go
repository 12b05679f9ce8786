package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 71

var headerArt = []string{
	"",
	"███╗   ██╗ ██████╗ ██╗███╗   ██╗██╗  ██╗",
	"████╗  ██║██╔════╝ ██║████╗  ██║╚██╗██╔╝",
	"██╔██╗ ██║██║  ███╗██║██╔██╗ ██║ ╚███╔╝ ",
	"██║╚██╗██║██║   ██║██║██║╚██╗██║ ██╔██╗ ",
	"██║ ╚████║╚██████╔╝██║██║ ╚████║██╔╝ ██╗",
	"╚═╝  ╚═══╝ ╚═════╝ ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝",
	"",
	"L O G   A N A L Y Z E R   v1.0",
	"",
}

const completeMessage = "Analysis Complete! ✓"

// Header is the banner written before any input is read.
func (r *Renderer) Header() string {
	return r.banner.Render(strings.Join(headerArt, "\n")) + "\n"
}

// Footer is the banner written after the last report.
func (r *Renderer) Footer() string {
	return "\n\n" + r.banner.Render(completeMessage) + "\n"
}

func newBannerStyle(lg *lipgloss.Renderer) lipgloss.Style {
	return lg.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#874BFD")).
		Foreground(lipgloss.Color("#00AFFF")).
		Align(lipgloss.Center).
		Width(bannerWidth)
}
