package session

import (
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/screens/summary"
)

// newSummaryScreen builds the summary for a finished exercise. Playing again
// resets the exercise and starts a fresh screen over it.
func (s *SessionScreen) newSummaryScreen() screen.Screen {
	ex, logger := s.ex, s.logger
	return summary.New(ex.Summary(), func() screen.Screen {
		ex.Reset()
		return New(ex, logger)
	})
}
