package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/screens/welcome"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

// renderTitle returns the banner, or its one-line form when compact.
func renderTitle(cw int, compact bool) string {
	width := cw
	if compact {
		width = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(width, theme.ArcadeYellow))
}

// renderStatsBar renders the last result in a double-bordered box.
func renderStatsBar(last *session.Summary, played, cw int) string {
	headStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if last == nil {
		stats = dimStyle.Render("PICK A GAME TO START")
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			headStyle.Render("LAST: "+last.Title),
			scoreStyle.Render(fmt.Sprintf("%d/%d", last.Correct, last.Total)),
			dimStyle.Render(fmt.Sprintf("%d played", played)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders the kind menu inside a card.
func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(m.View())
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + msg)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
