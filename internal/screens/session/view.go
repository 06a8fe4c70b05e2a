package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

func formatStep(step, total int) string {
	return fmt.Sprintf("%d/%d", step, total)
}

func (s *SessionScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if !s.hasPrompt {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Getting ready...")
	}
	return s.renderExercise(width)
}

// renderExercise renders the progress line, the exercise and the answer
// area or the feedback for the last answer.
func (s *SessionScreen) renderExercise(width int) string {
	p := s.prompt
	cw := components.ContentWidth(width)

	var b strings.Builder

	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + p.Title)
	if p.Review {
		label += "  " + theme.Review.Render("REVIEW")
	}
	bar := components.NewProgressBar(formatStep(p.Step, p.Total), p.Step-1, p.Total, min(cw, 40))
	line := label
	if pad := width - lipgloss.Width(label) - lipgloss.Width(bar.View()) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + bar.View()
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if p.Retry && s.feedback == nil {
		b.WriteString(layout.Centered(theme.Review.Render("Try this one again."), width))
		b.WriteString("\n\n")
	}

	// Multi-line exercises (pyramids, dice, clocks) keep their own
	// alignment as a block.
	b.WriteString(layout.Centered(theme.Exercise.Render(p.Text), width))
	b.WriteString("\n\n")

	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
		return b.String()
	}

	if s.useChoice {
		b.WriteString(layout.Centered(s.choice.View(), width))
	} else {
		b.WriteString(layout.Centered("Answer: "+s.input.View(), width))
	}
	b.WriteString("\n\n")

	if s.inputErr != "" {
		b.WriteString(layout.Centered(theme.Incorrect.Render(s.inputErr), width))
	} else {
		b.WriteString(layout.Centered(theme.Hint.Render(p.Hint), width))
	}
	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	fb := s.feedback
	style := theme.Incorrect
	if fb.Correct {
		style = theme.Correct
	}

	var b strings.Builder
	b.WriteString(layout.Centered(style.Render(fb.Message), width))
	b.WriteString("\n\n")
	if !fb.Correct || fb.ReviewStarted {
		b.WriteString(layout.Centered(theme.Hint.Render("Press any key to continue..."), width))
	}
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Stop practicing?"))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "This round will not be scored."))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}
