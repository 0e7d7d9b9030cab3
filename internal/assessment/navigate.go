package assessment

import (
	"errors"

	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/scoring"
)

var (
	ErrBlocked          = errors.New("required questions are unanswered")
	ErrAlreadyCompleted = errors.New("assessment already completed")
)

// NextAction decides what "continue" means at the current position: the
// next scenario, the next section, or completion on the last step.
func NextAction(s State, cat *catalog.Catalog, policy PresencePolicy) (Action, error) {
	if s.Completed {
		return Action{}, ErrAlreadyCompleted
	}
	if !CanAdvance(s, cat, policy) {
		return Action{}, ErrBlocked
	}

	sec, ok := cat.Section(s.CurrentSection)
	if !ok {
		return Action{}, ErrNoMoreSections
	}
	if s.CurrentScenario < len(sec.Scenarios)-1 {
		return NextScenario(), nil
	}
	if s.CurrentSection >= cat.LastSectionIndex() {
		return CompleteWith(scoring.ComputeResult(s.Answers)), nil
	}
	return NextSection(), nil
}

// Next applies NextAction.
func Next(s State, cat *catalog.Catalog, policy PresencePolicy) (State, error) {
	a, err := NextAction(s, cat, policy)
	if err != nil {
		return s, err
	}
	return Reduce(s, a), nil
}

// BackAction decides what "back" means at the current position. It reports
// false on the very first step and once the assessment is complete.
func BackAction(s State) (Action, bool) {
	switch {
	case s.Completed:
		return Action{}, false
	case s.CurrentScenario > 0:
		return PreviousScenario(), true
	case s.CurrentSection > 0:
		return PreviousSection(), true
	default:
		return Action{}, false
	}
}

// Back applies BackAction, or returns s unchanged.
func Back(s State) State {
	a, ok := BackAction(s)
	if !ok {
		return s
	}
	return Reduce(s, a)
}

// Position summarizes where a state sits in the catalog, for display.
type Position struct {
	Section      catalog.Section
	SectionIndex int

	// SectionNumber is 1-based among the scored sections; 0 on the introduction.
	SectionNumber int
	SectionCount  int

	Scenario      *catalog.Scenario
	ScenarioIndex int
	ScenarioCount int

	Intro    bool
	Pending  bool // active section has no scenarios yet
	LastStep bool

	// Progress is the fraction of steps behind the current one, 1 when complete.
	Progress float64
}

// Describe resolves s against cat.
func Describe(s State, cat *catalog.Catalog) Position {
	p := Position{
		SectionIndex:  s.CurrentSection,
		SectionNumber: s.CurrentSection,
		SectionCount:  max(0, cat.Len()-1),
		ScenarioIndex: s.CurrentScenario,
		Intro:         s.CurrentSection == 0,
	}

	if sec, ok := cat.Section(s.CurrentSection); ok {
		p.Section = sec
		p.ScenarioCount = len(sec.Scenarios)
		p.Pending = !p.Intro && !sec.Implemented()
		if scn, ok := cat.Scenario(s.CurrentSection, s.CurrentScenario); ok {
			p.Scenario = &scn
		}
	}
	p.LastStep = s.CurrentSection >= cat.LastSectionIndex() &&
		s.CurrentScenario >= p.ScenarioCount-1

	// Every scenario is a step; a section without scenarios is one step.
	var total, done int
	for i, sec := range cat.Sections {
		if i == 0 {
			continue
		}
		steps := max(1, len(sec.Scenarios))
		switch {
		case i < s.CurrentSection:
			done += steps
		case i == s.CurrentSection:
			done += min(s.CurrentScenario, steps)
		}
		total += steps
	}

	switch {
	case s.Completed:
		p.Progress = 1
	case total > 0:
		p.Progress = float64(done) / float64(total)
	}
	return p
}
