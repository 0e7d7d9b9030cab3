package assessment

import (
	"errors"
	"maps"
	"time"

	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/scoring"
)

var (
	ErrNoMoreSections  = errors.New("no more sections")
	ErrNoMoreScenarios = errors.New("no more scenarios")
)

// The transitions below are total: they never fail and do not check the
// catalog. Callers must detect the last scenario or section themselves, or
// use the Checked variants.

// AdvanceSection moves to the next section and its first scenario.
func AdvanceSection(s State) State {
	s.CurrentSection++
	s.CurrentScenario = 0
	return s
}

// RetreatSection moves to the previous section (floored at 0) and its first scenario.
func RetreatSection(s State) State {
	s.CurrentSection = max(0, s.CurrentSection-1)
	s.CurrentScenario = 0
	return s
}

// AdvanceScenario moves to the next scenario of the current section.
func AdvanceScenario(s State) State {
	s.CurrentScenario++
	return s
}

// RetreatScenario moves to the previous scenario, floored at 0.
func RetreatScenario(s State) State {
	s.CurrentScenario = max(0, s.CurrentScenario-1)
	return s
}

// RecordAnswer sets the answer for questionID, replacing any earlier one.
func RecordAnswer(s State, questionID string, v Answer) State {
	answers := s.Answers.Clone()
	answers[questionID] = v
	s.Answers = answers
	return s
}

// Complete marks the assessment complete and attaches its result.
func Complete(s State, r scoring.Result) State {
	s.Completed = true
	s.Result = &r
	return s
}

// TrackTime adds d to the time spent in the section with the given id.
func TrackTime(s State, sectionID string, d time.Duration) State {
	spent := make(map[string]time.Duration, len(s.TimeSpent)+1)
	maps.Copy(spent, s.TimeSpent)
	spent[sectionID] += d
	s.TimeSpent = spent
	return s
}

// AdvanceSectionChecked is AdvanceSection that refuses to move past the last section.
func AdvanceSectionChecked(s State, cat *catalog.Catalog) (State, error) {
	if s.CurrentSection >= cat.LastSectionIndex() {
		return s, ErrNoMoreSections
	}
	return AdvanceSection(s), nil
}

// AdvanceScenarioChecked is AdvanceScenario that refuses to move past the
// last scenario of the current section.
func AdvanceScenarioChecked(s State, cat *catalog.Catalog) (State, error) {
	sec, ok := cat.Section(s.CurrentSection)
	if !ok || s.CurrentScenario >= len(sec.Scenarios)-1 {
		return s, ErrNoMoreScenarios
	}
	return AdvanceScenario(s), nil
}
