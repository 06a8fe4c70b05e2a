package session

// feedbackDoneMsg ends the feedback display. seq guards against a delayed
// tick closing a newer feedback.
type feedbackDoneMsg struct {
	seq int
}
