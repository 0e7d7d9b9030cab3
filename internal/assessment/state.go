package assessment

import (
	"maps"
	"time"

	"github.com/abhisek/balancer/internal/scoring"
)

// Answers maps question id to the captured answer.
type Answers map[string]Answer

// Has reports whether an answer was captured for id.
func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// Clone returns a shallow copy. Answer values are immutable so sharing them is safe.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a)+1)
	maps.Copy(out, a)
	return out
}

// State is one snapshot of an assessment session. Transitions return a new
// State and never modify the maps of the one they were given, so earlier
// states stay valid for undo and replay.
type State struct {
	// CurrentSection indexes the catalog's sections; 0 is the introduction.
	CurrentSection int

	// CurrentScenario indexes the active section's scenarios. Reset to 0
	// whenever CurrentSection changes.
	CurrentScenario int

	Answers     Answers
	TimeStarted time.Time

	// TimeSpent accumulates time per section id.
	TimeSpent map[string]time.Duration

	Completed bool
	Result    *scoring.Result
}

// New creates the initial state of a session, positioned on the introduction.
func New(started time.Time) State {
	return State{
		Answers:     make(Answers),
		TimeStarted: started,
		TimeSpent:   make(map[string]time.Duration),
	}
}

// AnsweredCount returns the number of distinct answered questions.
func (s State) AnsweredCount() int {
	return len(s.Answers)
}

// Answer returns the captured answer for a question.
func (s State) Answer(questionID string) (Answer, bool) {
	a, ok := s.Answers[questionID]
	return a, ok
}
