package session

import (
	"log/slog"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/problemgen"
)

// ArithmeticSession is the addition/subtraction drill with a review pass.
type ArithmeticSession struct {
	*Engine[problemgen.Question, int]
	rng      problemgen.Rand
	settings problemgen.ArithmeticSettings
}

// NewArithmeticSession creates a session in the setup phase.
func NewArithmeticSession(rng problemgen.Rand, logger *slog.Logger) *ArithmeticSession {
	return &ArithmeticSession{
		Engine: NewEngine("arithmetic", gradeQuestion, logger),
		rng:    rng,
	}
}

func gradeQuestion(q problemgen.Question, answer int) bool { return q.Check(answer) }

// StartSession copies settings, generates the batch and begins the quiz.
func (s *ArithmeticSession) StartSession(settings problemgen.ArithmeticSettings) {
	s.settings = settings
	s.Start(problemgen.Arithmetic(settings, s.rng))
}

// SubmitAnswer grades answer for the current question.
func (s *ArithmeticSession) SubmitAnswer(answer int) bool { return s.Submit(answer) }

// ResetSession discards the run and the captured settings.
func (s *ArithmeticSession) ResetSession() {
	s.settings = problemgen.ArithmeticSettings{}
	s.Reset()
}

// Settings returns the settings captured at start.
func (s *ArithmeticSession) Settings() problemgen.ArithmeticSettings { return s.settings }

// ModeLabel returns the human label of the running mode.
func (s *ArithmeticSession) ModeLabel() string {
	return problemgen.ArithmeticModeLabel(s.settings.Mode)
}

// MultiplicationSession is the multiplication/division drill with a review pass.
type MultiplicationSession struct {
	*Engine[problemgen.Question, int]
	rng      problemgen.Rand
	settings problemgen.MultiplicationSettings
}

// NewMultiplicationSession creates a session in the setup phase.
func NewMultiplicationSession(rng problemgen.Rand, logger *slog.Logger) *MultiplicationSession {
	return &MultiplicationSession{
		Engine: NewEngine("multiplication", gradeQuestion, logger),
		rng:    rng,
	}
}

// StartSession copies settings, generates the batch and begins the quiz.
func (s *MultiplicationSession) StartSession(settings problemgen.MultiplicationSettings) {
	s.settings = settings
	s.Start(problemgen.Multiplication(settings, s.rng))
}

// SubmitAnswer grades answer for the current question.
func (s *MultiplicationSession) SubmitAnswer(answer int) bool { return s.Submit(answer) }

// ResetSession discards the run and the captured settings.
func (s *MultiplicationSession) ResetSession() {
	s.settings = problemgen.MultiplicationSettings{}
	s.Reset()
}

// Settings returns the settings captured at start.
func (s *MultiplicationSession) Settings() problemgen.MultiplicationSettings { return s.settings }

// ModeLabel returns the human label of the running mode.
func (s *MultiplicationSession) ModeLabel() string {
	return problemgen.MultiplicationModeLabel(s.settings.Mode)
}

// WordProblemSource supplies word problem templates.
type WordProblemSource interface {
	WordProblems() []content.WordProblem
}

// WordProblemSession is the word problem drill with a review pass. Every
// part of the equation must be given.
type WordProblemSession struct {
	*Engine[problemgen.WordProblem, problemgen.WordResponse]
	rng      problemgen.Rand
	bank     WordProblemSource
	settings problemgen.WordProblemSettings
}

// NewWordProblemSession creates a session in the setup phase.
func NewWordProblemSession(bank WordProblemSource, rng problemgen.Rand, logger *slog.Logger) *WordProblemSession {
	return &WordProblemSession{
		Engine: NewEngine("word-problems", func(p problemgen.WordProblem, r problemgen.WordResponse) bool {
			return p.Check(r)
		}, logger),
		rng:  rng,
		bank: bank,
	}
}

// StartSession copies settings, draws problems and begins the quiz.
func (s *WordProblemSession) StartSession(settings problemgen.WordProblemSettings) {
	s.settings = settings
	s.Start(problemgen.WordProblems(s.bank.WordProblems(), settings, s.rng))
}

// SubmitResponse grades a full equation for the current problem.
func (s *WordProblemSession) SubmitResponse(resp problemgen.WordResponse) bool {
	return s.Submit(resp)
}

// ResetSession discards the run and the captured settings.
func (s *WordProblemSession) ResetSession() {
	s.settings = problemgen.WordProblemSettings{}
	s.Reset()
}

// Settings returns the settings captured at start.
func (s *WordProblemSession) Settings() problemgen.WordProblemSettings { return s.settings }

// ClockReading is the time read off a clock face.
type ClockReading struct {
	Hours   int
	Minutes int
}

// ClockSession is the clock reading drill. The latest reading of each clock
// counts.
type ClockSession struct {
	*Drill[problemgen.ClockTime, ClockReading]
	rng problemgen.Rand
}

// NewClockSession creates a session in the setup phase.
func NewClockSession(rng problemgen.Rand, logger *slog.Logger) *ClockSession {
	return &ClockSession{
		Drill: NewDrill("clock", func(c problemgen.ClockTime, r ClockReading) bool {
			return c.Check(r.Hours, r.Minutes)
		}, ScoreLatest, logger),
		rng: rng,
	}
}

// StartSession generates clocks and begins the drill.
func (s *ClockSession) StartSession(settings problemgen.ClockSettings) {
	s.Start(problemgen.ClockTimes(settings, s.rng))
}

// ComparisonSession is the <, > or = drill.
type ComparisonSession struct {
	*Drill[problemgen.Comparison, problemgen.Relation]
	rng problemgen.Rand
}

// NewComparisonSession creates a session in the setup phase.
func NewComparisonSession(rng problemgen.Rand, logger *slog.Logger) *ComparisonSession {
	return &ComparisonSession{
		Drill: NewDrill("comparison", func(c problemgen.Comparison, r problemgen.Relation) bool {
			return c.Check(r)
		}, ScoreFirstTry, logger),
		rng: rng,
	}
}

// StartSession generates comparisons and begins the drill.
func (s *ComparisonSession) StartSession(settings problemgen.ComparisonSettings) {
	s.Start(problemgen.Comparisons(settings, s.rng))
}

// Parts is a split of a number into two addends.
type Parts struct {
	A int
	B int
}

// DecompositionSession asks for two numbers adding up to a total.
type DecompositionSession struct {
	*Drill[problemgen.Decomposition, Parts]
	rng problemgen.Rand
}

// NewDecompositionSession creates a session in the setup phase.
func NewDecompositionSession(rng problemgen.Rand, logger *slog.Logger) *DecompositionSession {
	return &DecompositionSession{
		Drill: NewDrill("decomposition", func(d problemgen.Decomposition, p Parts) bool {
			return d.Check(p.A, p.B)
		}, ScoreFirstTry, logger),
		rng: rng,
	}
}

// StartSession generates totals and begins the drill.
func (s *DecompositionSession) StartSession(settings problemgen.DecompositionSettings) {
	s.Start(problemgen.Decompositions(settings, s.rng))
}

// DiceSession asks for the sum of a dice throw. The latest answer to each
// throw counts.
type DiceSession struct {
	*Drill[problemgen.DiceThrow, int]
	rng problemgen.Rand
}

// NewDiceSession creates a session in the setup phase.
func NewDiceSession(rng problemgen.Rand, logger *slog.Logger) *DiceSession {
	return &DiceSession{
		Drill: NewDrill("dice", func(d problemgen.DiceThrow, sum int) bool {
			return d.Check(sum)
		}, ScoreLatest, logger),
		rng: rng,
	}
}

// StartSession throws the dice and begins the drill.
func (s *DiceSession) StartSession(settings problemgen.DiceSettings) {
	s.Start(problemgen.DiceThrows(settings, s.rng))
}

// NumberWritingSession asks to write a number given as tens and units.
type NumberWritingSession struct {
	*Drill[problemgen.NumberWriting, int]
	rng problemgen.Rand
}

// NewNumberWritingSession creates a session in the setup phase.
func NewNumberWritingSession(rng problemgen.Rand, logger *slog.Logger) *NumberWritingSession {
	return &NumberWritingSession{
		Drill: NewDrill("number-writing", func(n problemgen.NumberWriting, v int) bool {
			return n.Check(v)
		}, ScoreFirstTry, logger),
		rng: rng,
	}
}

// StartSession generates numbers and begins the drill.
func (s *NumberWritingSession) StartSession(settings problemgen.NumberWritingSettings) {
	s.Start(problemgen.NumberWritings(settings, s.rng))
}

// WordSource supplies spelling words by length.
type WordSource interface {
	Words(length int) []string
}

// WordLabSession is the spelling drill: the learner types each word shown.
type WordLabSession struct {
	*Drill[problemgen.SpellingWord, string]
	rng      problemgen.Rand
	bank     WordSource
	settings problemgen.WordLabSettings
}

// NewWordLabSession creates a session in the setup phase.
func NewWordLabSession(bank WordSource, rng problemgen.Rand, logger *slog.Logger) *WordLabSession {
	return &WordLabSession{
		Drill: NewDrill("word-lab", func(w problemgen.SpellingWord, typed string) bool {
			return w.Check(typed)
		}, ScoreFirstTry, logger),
		rng:  rng,
		bank: bank,
	}
}

// StartSession draws words of the chosen length and begins the drill.
func (s *WordLabSession) StartSession(settings problemgen.WordLabSettings) {
	s.settings = settings
	s.Start(problemgen.SpellingWords(s.bank.Words(settings.Letters), settings, s.rng))
}

// Settings returns the settings captured at start.
func (s *WordLabSession) Settings() problemgen.WordLabSettings { return s.settings }
