package session

import (
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathlab/internal/practice"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
)

// correctDelay is how long a correct answer's feedback stays up before the
// next exercise appears on its own.
const correctDelay = 900 * time.Millisecond

// SessionScreen runs one exercise session from first prompt to summary.
type SessionScreen struct {
	ex     practice.Exercise
	logger *slog.Logger

	prompt    practice.Prompt
	hasPrompt bool

	input     components.TextInput
	choice    components.MultiChoice
	useChoice bool

	feedback    *practice.Feedback
	feedbackSeq int
	inputErr    string
	quitConfirm bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen over ex. The exercise is started when the
// screen is shown.
func New(ex practice.Exercise, logger *slog.Logger) *SessionScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SessionScreen{ex: ex, logger: logger}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.ex.Start()
	s.logger.Debug("exercise screen opened", "kind", s.ex.Kind())
	if s.ex.Done() {
		return router.ReplaceCmd(s.newSummaryScreen())
	}
	return s.loadPrompt()
}

// loadPrompt reads the current prompt and resets the input for it.
func (s *SessionScreen) loadPrompt() tea.Cmd {
	s.prompt, s.hasPrompt = s.ex.Prompt()
	s.inputErr = ""
	if len(s.prompt.Choices) > 0 {
		s.useChoice = true
		s.choice = components.NewMultiChoice(s.prompt.Choices)
		return nil
	}
	s.useChoice = false
	s.input = components.NewTextInput(placeholder(s.prompt.Kind), charset(s.prompt.Kind), 40)
	return s.input.Init()
}

func placeholder(k practice.Kind) string {
	switch k {
	case practice.KindWordProblems:
		return "3 + 4 = 7"
	case practice.KindClock:
		return "h:mm"
	case practice.KindDecomposition:
		return "a + b"
	case practice.KindPyramid:
		return "numbers, top row first"
	case practice.KindWordLab:
		return "type the word"
	}
	return "your answer"
}

func charset(k practice.Kind) components.Charset {
	switch k {
	case practice.KindWordLab:
		return components.AnyText
	case practice.KindArithmetic, practice.KindMultiplication, practice.KindDice, practice.KindNumberWriting:
		return components.Numeric
	}
	return components.Arithmetic
}

func (s *SessionScreen) Title() string {
	if !s.hasPrompt {
		return "Practice"
	}
	return s.prompt.Title
}

func (s *SessionScreen) Status() string {
	if !s.hasPrompt {
		return ""
	}
	progress := formatStep(s.prompt.Step, s.prompt.Total)
	if s.prompt.Review {
		return "Review " + progress
	}
	return progress
}

func (s *SessionScreen) HandlesEscape() bool { return true }

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop"},
			{Key: "N", Description: "Keep going"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.useChoice:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.feedback == nil || msg.seq != s.feedbackSeq {
			return s, nil
		}
		return s.handleFeedbackDone()

	case components.ChoiceMsg:
		if s.feedback != nil || s.quitConfirm {
			return s, nil
		}
		return s.submit(msg.Value)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.feedback == nil && !s.quitConfirm && !s.useChoice {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.logger.Debug("exercise abandoned", "kind", s.ex.Kind())
			s.ex.Reset()
			return s, router.PopCmd
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.feedback != nil {
		return s.handleFeedbackDone()
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.useChoice {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}

	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		return s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit grades value. Unreadable input stays in the box with a hint.
func (s *SessionScreen) submit(value string) (screen.Screen, tea.Cmd) {
	fb, err := s.ex.Submit(value)
	switch {
	case errors.Is(err, practice.ErrInvalidInput):
		s.inputErr = "Hmm, I can't read that. " + s.prompt.Hint
		return s, nil
	case err != nil:
		s.logger.Warn("submit failed", "kind", s.ex.Kind(), "err", err)
		return s, nil
	}

	s.inputErr = ""
	s.feedback = &fb
	s.feedbackSeq++
	if !s.useChoice {
		s.input.Submit(fb.Correct)
	}
	if fb.Correct && !fb.ReviewStarted {
		seq := s.feedbackSeq
		return s, tea.Tick(correctDelay, func(time.Time) tea.Msg { return feedbackDoneMsg{seq: seq} })
	}
	return s, nil
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.feedback = nil
	if s.ex.Done() {
		sum := s.ex.Summary()
		s.logger.Info("exercise finished", "kind", s.ex.Kind(), "total", sum.Total, "correct", sum.Correct, "attempts", sum.Attempts)
		return s, router.ReplaceCmd(s.newSummaryScreen())
	}
	return s, s.loadPrompt()
}
