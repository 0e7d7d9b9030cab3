package assessment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/balancer/internal/journal"
	"github.com/abhisek/balancer/internal/scoring"
)

// ActionKind names a state transition. The values double as journal entry kinds.
type ActionKind string

const (
	ActionSaveAnswer       ActionKind = "save-answer"
	ActionNextSection      ActionKind = "next-section"
	ActionPreviousSection  ActionKind = "previous-section"
	ActionNextScenario     ActionKind = "next-scenario"
	ActionPreviousScenario ActionKind = "previous-scenario"
	ActionComplete         ActionKind = journal.KindComplete
	ActionTrackTime        ActionKind = "track-time"
)

// KindUndo is journaled when a session restores its previous state. It is
// not an Action: undo needs the session history, not just the current state.
const KindUndo = "undo"

// Action is a request to transition state. Only the fields relevant to Kind
// are read.
type Action struct {
	Kind ActionKind

	// save-answer
	QuestionID string
	Answer     Answer

	// complete; nil means compute from the answers at reduce time
	Result *scoring.Result

	// track-time
	SectionID string
	Duration  time.Duration

	// auto marks a track-time dispatched by the session itself ahead of a
	// section change. Replay uses it to group the pair into one undo step.
	auto bool
}

func SaveAnswer(questionID string, v Answer) Action {
	return Action{Kind: ActionSaveAnswer, QuestionID: questionID, Answer: v}
}

func NextSection() Action      { return Action{Kind: ActionNextSection} }
func PreviousSection() Action  { return Action{Kind: ActionPreviousSection} }
func NextScenario() Action     { return Action{Kind: ActionNextScenario} }
func PreviousScenario() Action { return Action{Kind: ActionPreviousScenario} }

// CompleteWith finishes the assessment with r.
func CompleteWith(r scoring.Result) Action {
	return Action{Kind: ActionComplete, Result: &r}
}

func TrackTimeFor(sectionID string, d time.Duration) Action {
	return Action{Kind: ActionTrackTime, SectionID: sectionID, Duration: d}
}

// ChangesSection reports whether applying the action can move to another section.
func (a Action) ChangesSection() bool {
	switch a.Kind {
	case ActionNextSection, ActionPreviousSection, ActionComplete:
		return true
	}
	return false
}

// Reduce applies a to s. Unknown kinds leave s unchanged.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActionSaveAnswer:
		return RecordAnswer(s, a.QuestionID, a.Answer)
	case ActionNextSection:
		return AdvanceSection(s)
	case ActionPreviousSection:
		return RetreatSection(s)
	case ActionNextScenario:
		return AdvanceScenario(s)
	case ActionPreviousScenario:
		return RetreatScenario(s)
	case ActionComplete:
		if a.Result != nil {
			return Complete(s, *a.Result)
		}
		return Complete(s, scoring.ComputeResult(s.Answers))
	case ActionTrackTime:
		return TrackTime(s, a.SectionID, a.Duration)
	default:
		return s
	}
}

type actionPayload struct {
	Answer     *Answer         `json:"answer,omitempty"`
	Result     *scoring.Result `json:"result,omitempty"`
	SectionID  string          `json:"sectionId,omitempty"`
	DurationNs int64           `json:"durationNs,omitempty"`
	Auto       bool            `json:"auto,omitempty"`
}

func (a Action) payload() (string, error) {
	var p actionPayload
	switch a.Kind {
	case ActionSaveAnswer:
		p.Answer = &a.Answer
	case ActionComplete:
		p.Result = a.Result
	case ActionTrackTime:
		p.SectionID = a.SectionID
		p.DurationNs = int64(a.Duration)
		p.Auto = a.auto
	default:
		return "", nil
	}

	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", a.Kind, err)
	}
	return string(b), nil
}

// entryData converts an action applied at position s into a journal entry.
func (a Action) entryData(sessionID string, s State, at time.Time) (journal.EntryData, error) {
	payload, err := a.payload()
	if err != nil {
		return journal.EntryData{}, err
	}
	return journal.EntryData{
		SessionID:     sessionID,
		Kind:          string(a.Kind),
		SectionIndex:  s.CurrentSection,
		ScenarioIndex: s.CurrentScenario,
		QuestionID:    a.QuestionID,
		Payload:       payload,
		Timestamp:     at,
	}, nil
}

// ActionFromEntry decodes a journaled action.
func ActionFromEntry(e journal.Entry) (Action, error) {
	a := Action{Kind: ActionKind(e.Kind), QuestionID: e.QuestionID}
	switch a.Kind {
	case ActionNextSection, ActionPreviousSection, ActionNextScenario, ActionPreviousScenario:
		return a, nil
	case ActionSaveAnswer, ActionComplete, ActionTrackTime:
	default:
		return Action{}, fmt.Errorf("entry %d: unknown action kind %q", e.Sequence, e.Kind)
	}

	var p actionPayload
	if e.Payload != "" {
		if err := json.Unmarshal([]byte(e.Payload), &p); err != nil {
			return Action{}, fmt.Errorf("entry %d: decode %s payload: %w", e.Sequence, e.Kind, err)
		}
	}

	switch a.Kind {
	case ActionSaveAnswer:
		if p.Answer == nil {
			return Action{}, fmt.Errorf("entry %d: save-answer without answer", e.Sequence)
		}
		a.Answer = *p.Answer
	case ActionComplete:
		a.Result = p.Result
	case ActionTrackTime:
		a.SectionID = p.SectionID
		a.Duration = time.Duration(p.DurationNs)
		a.auto = p.Auto
	}
	return a, nil
}
