package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

// maxMistakeLines caps the mistake list; the rest are counted.
const maxMistakeLines = 8

// FinishedMsg is delivered to the screen below the summary when the learner
// leaves it.
type FinishedMsg struct {
	Summary session.Summary
}

// SummaryScreen displays the result of one exercise session.
type SummaryScreen struct {
	summary session.Summary
	// again builds a fresh screen for the same exercise kind. Nil disables
	// replay.
	again func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(sum session.Summary, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: sum, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.summary.Title + " · Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.again != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		sum := s.summary
		return s, tea.Sequence(router.PopCmd, func() tea.Msg { return FinishedMsg{Summary: sum} })
	case "r", "R":
		if s.again != nil {
			return s, router.ReplaceCmd(s.again())
		}
	}
	return s, nil
}

// Headline returns the cheer line for an accuracy.
func Headline(sum session.Summary) string {
	switch {
	case sum.Total == 0:
		return "Nothing to practice this time."
	case sum.Correct == sum.Total:
		return "Perfect score!"
	case sum.Accuracy >= 0.8:
		return "Great work!"
	case sum.Accuracy >= 0.5:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(accuracyColor(sum)).Bold(true), Headline(sum)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Exercises: %d        Correct first time: %d        Accuracy: %.0f%%",
		sum.Total, sum.Correct, sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n")

	bar := components.NewProgressBar("", sum.Correct, sum.Total, cw)
	bar.ShowPercent = false
	b.WriteString(layout.Centered(bar.View(), width))
	b.WriteString("\n")

	if sum.ReviewedPass {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Finished after %d passes, including a review of the missed ones.", sum.Attempts)))
		b.WriteString("\n")
	}

	if len(sum.Mistakes) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("To practice"), width))
		b.WriteString("\n")
		b.WriteString(layout.Centered(divider, width))
		b.WriteString("\n")

		var lines []string
		for i, m := range sum.Mistakes {
			if i == maxMistakeLines {
				lines = append(lines, theme.Hint.Render(fmt.Sprintf("...and %d more", len(sum.Mistakes)-i)))
				break
			}
			lines = append(lines, MistakeLine(m))
		}
		b.WriteString(layout.Centered(strings.Join(lines, "\n"), width))
		b.WriteString("\n")
	}

	return b.String()
}

// MistakeLine formats one missed exercise on a single line.
func MistakeLine(m session.MistakeRecord) string {
	prompt := strings.Join(strings.Fields(strings.ReplaceAll(m.Prompt, "\n", " / ")), " ")
	return lipgloss.NewStyle().Foreground(theme.Text).Render(prompt) + "  " +
		theme.Incorrect.Render(m.Given) + "  " +
		theme.Correct.Render("→ "+m.Expected)
}

// accuracyColor returns the theme color for a session result.
func accuracyColor(sum session.Summary) color.Color {
	switch {
	case sum.Total > 0 && sum.Correct == sum.Total:
		return theme.ArcadeYellow
	case sum.Accuracy >= 0.5:
		return theme.Success
	default:
		return theme.Accent
	}
}
