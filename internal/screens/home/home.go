package home

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathlab/internal/practice"
	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	sessionscreen "github.com/abhisek/mathlab/internal/screens/session"
	"github.com/abhisek/mathlab/internal/screens/summary"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
)

// HomeScreen lists the exercise kinds and remembers the last result.
type HomeScreen struct {
	settings practice.Settings
	rng      problemgen.Rand
	logger   *slog.Logger

	menu   components.Menu
	last   *session.Summary
	played int
	err    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a HomeScreen offering every exercise kind with settings.
func New(settings practice.Settings, rng problemgen.Rand, logger *slog.Logger) *HomeScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &HomeScreen{settings: settings, rng: rng, logger: logger}

	var items []components.MenuItem
	for _, info := range practice.Kinds() {
		k := info.Kind
		items = append(items, components.MenuItem{
			Label:  info.Title,
			Detail: settings.Describe(k),
			Action: func() tea.Cmd { return h.open(k) },
		})
	}
	items = append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }})
	h.menu = components.NewMenu(items)
	return h
}

// open builds a fresh exercise of kind k and pushes its screen.
func (h *HomeScreen) open(k practice.Kind) tea.Cmd {
	ex, err := practice.New(k, h.settings, h.rng, h.logger)
	if err != nil {
		h.logger.Error("open exercise", "kind", k, "err", err)
		h.err = err.Error()
		return nil
	}
	h.err = ""
	return router.PushCmd(sessionscreen.New(ex, h.logger))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(summary.FinishedMsg); ok {
		sum := done.Summary
		h.last = &sum
		h.played++
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.last), cw))
	}
	sections = append(sections, renderStatsBar(h.last, h.played, cw))
	sections = append(sections, renderMenu(h.menu, cw))
	if h.err != "" {
		sections = append(sections, renderError(h.err, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	if h.played == 0 {
		return ""
	}
	return fmt.Sprintf("★ %d played", h.played)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// mascotFor picks the mascot mood from the last result.
func mascotFor(last *session.Summary) MascotVariant {
	switch {
	case last == nil || last.Total == 0:
		return MascotIdle
	case last.Correct == last.Total:
		return MascotCelebrating
	case last.Accuracy < 0.5:
		return MascotAlert
	}
	return MascotIdle
}
