package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	taglineAt    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Practice makes perfect!"

// symbols drift across the line above the banner.
var symbols = []string{"+", "−", "×", "÷", "="}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
// Any key skips ahead.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.ReplaceCmd(w.homeFactory())
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	line := make([]string, 0, 9)
	for i := range 9 {
		sym := symbols[(i+w.tickCount)%len(symbols)]
		style := lipgloss.NewStyle().Foreground(theme.Secondary)
		if i%2 == 1 {
			style = style.Foreground(theme.Accent)
		}
		line = append(line, style.Render(sym))
	}
	sections = append(sections, strings.Join(line, "   "))

	if w.elapsed >= bannerAt {
		sections = append(sections, "", DefaultBanner(width))
	}

	if w.elapsed >= taglineAt {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
